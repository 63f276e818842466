package models

import "regexp"

// TitleClass is the release-relevance classification of a PR title
type TitleClass int

const (
	// TitleRelevant means the change belongs on a release board
	TitleRelevant TitleClass = iota
	// TitleSkipped means the change needs no release tracking
	TitleSkipped
)

func (c TitleClass) String() string {
	switch c {
	case TitleRelevant:
		return "relevant"
	case TitleSkipped:
		return "skipped"
	default:
		return ""
	}
}

var (
	releasePrefix      = regexp.MustCompile(`^(feat|fix):`)
	conventionalPrefix = regexp.MustCompile(`^[a-z]+:`)
)

// ClassifyTitle classifies a PR title by its conventional-commit prefix.
// feat/fix are release-relevant, any other lowercase prefix is skipped, and
// titles without a recognizable prefix default to relevant.
func ClassifyTitle(title string) TitleClass {
	if releasePrefix.MatchString(title) {
		return TitleRelevant
	}
	if conventionalPrefix.MatchString(title) {
		return TitleSkipped
	}
	return TitleRelevant
}
