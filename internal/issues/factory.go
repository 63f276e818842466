// Package issues creates tracking issues for pull requests.
package issues

import (
	"context"
	"fmt"

	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// api is the slice of the API client the factory needs.
type api interface {
	GetRepositoryID(ctx context.Context, owner, name string) (string, error)
	CreateIssue(ctx context.Context, repositoryID, title, body string) (models.TrackingIssue, error)
}

// Factory creates tracking issues in the configured issues repository.
type Factory struct {
	cfg config.Config
	api api
}

func NewFactory(cfg config.Config, api api) *Factory {
	return &Factory{cfg: cfg, api: api}
}

// CreateFor creates the tracking issue summarizing a pull request. The title
// follows the fixed template and the body is the PR's URL.
func (f *Factory) CreateFor(ctx context.Context, pr models.PullRequest) (models.TrackingIssue, error) {
	repoID, err := f.api.GetRepositoryID(ctx, f.cfg.GitHub.Org, f.cfg.IssuesRepoName())
	if err != nil {
		return models.TrackingIssue{}, fmt.Errorf("resolving issues repository: %w", err)
	}

	issue, err := f.api.CreateIssue(ctx, repoID, models.TrackingIssueTitle(pr), pr.URL)
	if err != nil {
		return models.TrackingIssue{}, fmt.Errorf("creating tracking issue for %s#%d: %w", pr.Repo, pr.Number, err)
	}
	return issue, nil
}
