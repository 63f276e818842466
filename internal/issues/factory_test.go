package issues

import (
	"context"
	"errors"
	"testing"

	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

type fakeAPI struct {
	repoIDErr error
	createErr error

	repoOwner string
	repoName  string
	gotRepoID string
	gotTitle  string
	gotBody   string
}

func (f *fakeAPI) GetRepositoryID(_ context.Context, owner, name string) (string, error) {
	f.repoOwner = owner
	f.repoName = name
	if f.repoIDErr != nil {
		return "", f.repoIDErr
	}
	return "REPO1", nil
}

func (f *fakeAPI) CreateIssue(_ context.Context, repositoryID, title, body string) (models.TrackingIssue, error) {
	f.gotRepoID = repositoryID
	f.gotTitle = title
	f.gotBody = body
	if f.createErr != nil {
		return models.TrackingIssue{}, f.createErr
	}
	return models.TrackingIssue{ID: "ISSUE1", Title: title, URL: "https://github.com/x/issues/1"}, nil
}

func samplePR() models.PullRequest {
	return models.PullRequest{
		ID:     "PR1",
		Number: 42,
		Title:  "fix: null pointer",
		URL:    "https://github.com/wahlandcase/repoX/pull/42",
		Repo:   "repoX",
		State:  models.PRStateMerged,
	}
}

func TestCreateFor(t *testing.T) {
	api := &fakeAPI{}
	f := NewFactory(config.DefaultConfig(), api)

	issue, err := f.CreateFor(context.Background(), samplePR())
	if err != nil {
		t.Fatalf("CreateFor() error = %v", err)
	}

	if issue.ID != "ISSUE1" {
		t.Errorf("issue.ID = %q, want ISSUE1", issue.ID)
	}
	if api.repoOwner != "wahlandcase" || api.repoName != "release-issues" {
		t.Errorf("issues repo = %s/%s, want wahlandcase/release-issues", api.repoOwner, api.repoName)
	}
	if api.gotRepoID != "REPO1" {
		t.Errorf("repositoryID = %q, want REPO1", api.gotRepoID)
	}
	if api.gotTitle != "Test repoX#42 (fix: null pointer)" {
		t.Errorf("title = %q", api.gotTitle)
	}
	if api.gotBody != "https://github.com/wahlandcase/repoX/pull/42" {
		t.Errorf("body = %q, want the PR URL", api.gotBody)
	}
}

func TestCreateForUsesTestRepoInTestMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TestMode = true
	api := &fakeAPI{}
	f := NewFactory(cfg, api)

	if _, err := f.CreateFor(context.Background(), samplePR()); err != nil {
		t.Fatalf("CreateFor() error = %v", err)
	}
	if api.repoName != "test-release-issues" {
		t.Errorf("repoName = %q, want test-release-issues", api.repoName)
	}
}

func TestCreateForPropagatesRepoLookupFailure(t *testing.T) {
	lookupErr := errors.New("repo lookup exploded")
	f := NewFactory(config.DefaultConfig(), &fakeAPI{repoIDErr: lookupErr})

	if _, err := f.CreateFor(context.Background(), samplePR()); !errors.Is(err, lookupErr) {
		t.Errorf("error = %v, want wrapped lookup error", err)
	}
}

func TestCreateForPropagatesCreateFailure(t *testing.T) {
	createErr := errors.New("create exploded")
	f := NewFactory(config.DefaultConfig(), &fakeAPI{createErr: createErr})

	if _, err := f.CreateFor(context.Background(), samplePR()); !errors.Is(err, createErr) {
		t.Errorf("error = %v, want wrapped create error", err)
	}
}
