package models

import "testing"

func TestParsePRState(t *testing.T) {
	tests := []struct {
		in      string
		want    PRState
		wantErr bool
	}{
		{in: "OPEN", want: PRStateOpen},
		{in: "MERGED", want: PRStateMerged},
		{in: "CLOSED", want: PRStateClosed},
		{in: "DRAFT", wantErr: true},
		{in: "open", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePRState(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePRState(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePRState(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePRState(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasLabel(t *testing.T) {
	pr := PullRequest{Labels: []string{"bug", "to-cherry-pick"}}

	if !pr.HasLabel("to-cherry-pick") {
		t.Error("HasLabel(to-cherry-pick) = false, want true")
	}
	if pr.HasLabel("enhancement") {
		t.Error("HasLabel(enhancement) = true, want false")
	}
	if (PullRequest{}).HasLabel("bug") {
		t.Error("HasLabel on empty labels = true, want false")
	}
}

func TestTrackingIssueTitle(t *testing.T) {
	pr := PullRequest{Repo: "repoX", Number: 42, Title: "fix: null pointer"}

	want := "Test repoX#42 (fix: null pointer)"
	if got := TrackingIssueTitle(pr); got != want {
		t.Errorf("TrackingIssueTitle() = %q, want %q", got, want)
	}
}
