package models

import "fmt"

// PRState represents the lifecycle state of a pull request
type PRState int

const (
	// PRStateOpen means the PR has not been merged or closed
	PRStateOpen PRState = iota
	// PRStateMerged means the PR was merged
	PRStateMerged
	// PRStateClosed means the PR was closed without merging
	PRStateClosed
)

// ParsePRState maps the API's state strings ("OPEN", "MERGED", "CLOSED")
func ParsePRState(s string) (PRState, error) {
	switch s {
	case "OPEN":
		return PRStateOpen, nil
	case "MERGED":
		return PRStateMerged, nil
	case "CLOSED":
		return PRStateClosed, nil
	default:
		return PRStateClosed, fmt.Errorf("unknown pull request state %q", s)
	}
}

func (s PRState) String() string {
	switch s {
	case PRStateOpen:
		return "open"
	case PRStateMerged:
		return "merged"
	case PRStateClosed:
		return "closed"
	default:
		return ""
	}
}

// PullRequest carries the PR metadata the handlers need
type PullRequest struct {
	// ID is the API node id
	ID string
	// Number is the PR number within Repo
	Number int
	// Title is the PR title
	Title string
	// URL is the PR's web URL
	URL string
	// Labels are the label names currently on the PR
	Labels []string
	// State is the lifecycle state
	State PRState
	// Repo is the owning repository name (without the org)
	Repo string
	// MergeCommit is the merge commit sha, empty until merged
	MergeCommit string
}

// HasLabel reports whether the PR carries the named label
func (p PullRequest) HasLabel(name string) bool {
	for _, l := range p.Labels {
		if l == name {
			return true
		}
	}
	return false
}
