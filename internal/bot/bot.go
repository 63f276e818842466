// Package bot is the release-tracking state machine. Each handler reacts to
// one pull-request lifecycle event and drives the "Next release" and
// "Current release" boards through the injected collaborators. Handlers keep
// no local state; the boards are the single source of truth.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// PRSource fetches pull request metadata by node id.
type PRSource interface {
	GetPullRequest(ctx context.Context, id string) (models.PullRequest, error)
}

// ProjectResolver finds a release board by role.
type ProjectResolver interface {
	Resolve(ctx context.Context, role models.ProjectRole) (models.Project, error)
}

// Board adds, re-statuses and removes board items.
type Board interface {
	AddWithStatus(ctx context.Context, projectID, subjectID string, status models.Status) (string, error)
	RemoveItem(ctx context.Context, projectID, subjectID string) error
}

// IssueFactory creates tracking issues for pull requests.
type IssueFactory interface {
	CreateFor(ctx context.Context, pr models.PullRequest) (models.TrackingIssue, error)
}

// CherryPicker replays a merge commit onto the release branch.
type CherryPicker interface {
	CherryPick(ctx context.Context, commit string) (models.PickResult, error)
}

// Bot routes pull-request events to board mutations.
type Bot struct {
	cfg      config.Config
	log      *slog.Logger
	prs      PRSource
	projects ProjectResolver
	board    Board
	issues   IssueFactory
	picker   CherryPicker
}

func New(cfg config.Config, log *slog.Logger, prs PRSource, projects ProjectResolver, board Board, issues IssueFactory, picker CherryPicker) *Bot {
	return &Bot{
		cfg:      cfg,
		log:      log,
		prs:      prs,
		projects: projects,
		board:    board,
		issues:   issues,
		picker:   picker,
	}
}

// OnMerged handles a merged PR: feat/fix changes (and titles without a
// conventional prefix) get release tracking, everything else is skipped.
// The cherry-pick label decides which board the change lands on.
func (b *Bot) OnMerged(ctx context.Context, pr models.PullRequest) error {
	class := models.ClassifyTitle(pr.Title)
	b.log.Info("classified merged pull request",
		"pr", pr.Number, "title", pr.Title, "class", class.String())

	if class == models.TitleSkipped {
		return nil
	}

	if pr.HasLabel(b.cfg.GitHub.CherryPickLabel) {
		return b.cherryPickInto(ctx, pr, models.CurrentRelease)
	}
	return b.trackInto(ctx, pr, models.NextRelease, models.NeedsTesting)
}

// OnLabeled handles a label addition. Only the cherry-pick label matters:
// open PRs go onto the current-release board themselves, merged PRs get
// cherry-picked, closed PRs are ignored.
func (b *Bot) OnLabeled(ctx context.Context, pr models.PullRequest, label string) error {
	if label != b.cfg.GitHub.CherryPickLabel {
		b.log.Debug("ignoring label", "pr", pr.Number, "label", label)
		return nil
	}

	switch pr.State {
	case models.PRStateOpen:
		project, err := b.projects.Resolve(ctx, models.CurrentRelease)
		if err != nil {
			return err
		}
		b.log.Info("adding open pull request to board",
			"pr", pr.Number, "project", project.Title, "status", models.FixOpen.Display())
		itemID, err := b.board.AddWithStatus(ctx, project.ID, pr.ID, models.FixOpen)
		if err != nil {
			return err
		}
		b.log.Info("added pull request to board", "pr", pr.Number, "item", itemID)
		return nil
	case models.PRStateMerged:
		return b.cherryPickInto(ctx, pr, models.CurrentRelease)
	default:
		b.log.Info("ignoring cherry-pick label on closed pull request", "pr", pr.Number)
		return nil
	}
}

// OnUnlabeled handles a label removal. Removing the cherry-pick label from an
// open PR takes it off the current-release board; merged and closed PRs are
// left untouched.
func (b *Bot) OnUnlabeled(ctx context.Context, pr models.PullRequest, label string) error {
	if label != b.cfg.GitHub.CherryPickLabel {
		b.log.Debug("ignoring label removal", "pr", pr.Number, "label", label)
		return nil
	}

	if pr.State != models.PRStateOpen {
		b.log.Info("no board change for unlabeled pull request",
			"pr", pr.Number, "state", pr.State.String())
		return nil
	}

	project, err := b.projects.Resolve(ctx, models.CurrentRelease)
	if err != nil {
		return err
	}
	b.log.Info("removing pull request from board", "pr", pr.Number, "project", project.Title)
	return b.board.RemoveItem(ctx, project.ID, pr.ID)
}

// OnConflictResolved handles an externally fixed cherry-pick conflict: the
// PR's conflicted item leaves the current-release board first, then a fresh
// tracking issue lands there at "Needs testing".
func (b *Bot) OnConflictResolved(ctx context.Context, pr models.PullRequest) error {
	project, err := b.projects.Resolve(ctx, models.CurrentRelease)
	if err != nil {
		return err
	}

	b.log.Info("removing conflicted item from board", "pr", pr.Number, "project", project.Title)
	if err := b.board.RemoveItem(ctx, project.ID, pr.ID); err != nil {
		return err
	}

	return b.trackInto(ctx, pr, models.CurrentRelease, models.NeedsTesting)
}

// cherryPickInto runs the cherry-pick procedure: replay the merge commit, map
// the outcome to a status, and track the PR on the target board either way.
func (b *Bot) cherryPickInto(ctx context.Context, pr models.PullRequest, role models.ProjectRole) error {
	if pr.MergeCommit == "" {
		return fmt.Errorf("pull request %s#%d has no merge commit", pr.Repo, pr.Number)
	}

	b.log.Info("attempting cherry-pick", "pr", pr.Number, "commit", pr.MergeCommit)
	result, err := b.picker.CherryPick(ctx, pr.MergeCommit)
	if err != nil {
		return fmt.Errorf("cherry-pick of %s: %w", pr.MergeCommit, err)
	}

	status := result.Status()
	if models.IsConflict(result) {
		b.log.Info("cherry-pick conflicted", "pr", pr.Number, "status", status.Display())
	} else {
		b.log.Info("cherry-pick applied", "pr", pr.Number, "status", status.Display())
	}

	return b.trackInto(ctx, pr, role, status)
}

// trackInto creates a tracking issue for the PR and puts it on the role's
// board at the given status.
func (b *Bot) trackInto(ctx context.Context, pr models.PullRequest, role models.ProjectRole, status models.Status) error {
	project, err := b.projects.Resolve(ctx, role)
	if err != nil {
		return err
	}
	b.log.Info("tracking pull request",
		"pr", pr.Number, "project", project.Title, "status", status.Display())

	issue, err := b.issues.CreateFor(ctx, pr)
	if err != nil {
		return err
	}
	b.log.Info("created tracking issue", "title", issue.Title, "url", issue.URL)

	itemID, err := b.board.AddWithStatus(ctx, project.ID, issue.ID, status)
	if err != nil {
		return err
	}
	b.log.Info("added tracking issue to board", "project", project.Title, "item", itemID)
	return nil
}
