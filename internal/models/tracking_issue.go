package models

import "fmt"

// TrackingIssue is an issue created to represent "this change needs manual
// verification" on a release board
type TrackingIssue struct {
	// ID is the API node id
	ID string
	// Title is the generated issue title
	Title string
	// URL is the issue's web URL
	URL string
}

// TrackingIssueTitle formats the fixed title template for a PR's tracking issue
func TrackingIssueTitle(pr PullRequest) string {
	return fmt.Sprintf("Test %s#%d (%s)", pr.Repo, pr.Number, pr.Title)
}
