package models

import "testing"

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  TitleClass
	}{
		{name: "feat", title: "feat: add export button", want: TitleRelevant},
		{name: "fix", title: "fix: null pointer", want: TitleRelevant},
		{name: "chore", title: "chore: bump deps", want: TitleSkipped},
		{name: "docs", title: "docs: update readme", want: TitleSkipped},
		{name: "refactor", title: "refactor: split handler", want: TitleSkipped},
		{name: "ci", title: "ci: cache modules", want: TitleSkipped},
		{name: "no prefix", title: "Update README", want: TitleRelevant},
		{name: "uppercase prefix is not conventional", title: "Fix: crash on load", want: TitleRelevant},
		{name: "prefix without colon", title: "feat add button", want: TitleRelevant},
		{name: "feat embedded mid-title", title: "revert: feat: add export", want: TitleSkipped},
		{name: "empty", title: "", want: TitleRelevant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTitle(tt.title); got != tt.want {
				t.Errorf("ClassifyTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}
