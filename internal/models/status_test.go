package models

import "testing"

func TestStatusDisplay(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{NeedsTesting, "Needs testing"},
		{FixOpen, "Fix (open)"},
		{FixConflict, "Fix (conflict)"},
	}

	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}

func TestStatusFieldOptionID(t *testing.T) {
	field := StatusField{
		ID: "FIELD1",
		Options: []StatusOption{
			{ID: "OPT1", Name: "Needs testing"},
			{ID: "OPT2", Name: "Fix (open)"},
			{ID: "OPT3", Name: "Fix (conflict)"},
		},
	}

	id, ok := field.OptionID("Fix (open)")
	if !ok || id != "OPT2" {
		t.Errorf("OptionID(Fix (open)) = %q, %v, want OPT2, true", id, ok)
	}

	if _, ok := field.OptionID("Done"); ok {
		t.Error("OptionID(Done) = true, want false")
	}
}

func TestPickResultStatus(t *testing.T) {
	if got := Applied.Status(); got != NeedsTesting {
		t.Errorf("Applied.Status() = %v, want NeedsTesting", got)
	}
	if got := Conflict.Status(); got != FixConflict {
		t.Errorf("Conflict.Status() = %v, want FixConflict", got)
	}

	if IsConflict(Applied) {
		t.Error("IsConflict(Applied) = true, want false")
	}
	if !IsConflict(Conflict) {
		t.Error("IsConflict(Conflict) = false, want true")
	}
}
