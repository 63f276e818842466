// Package git replays merged commits onto the release branch.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

const commandTimeout = 30 * time.Second

// runner executes one git command in a directory and returns combined output
type runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Executor cherry-picks commits onto the release branch of a local clone.
type Executor struct {
	repoPath      string
	releaseBranch string
	run           runner
}

func NewExecutor(cfg config.Config) *Executor {
	return &Executor{
		repoPath:      cfg.CherryPick.RepoPath,
		releaseBranch: cfg.CherryPick.ReleaseBranch,
		run:           execGit,
	}
}

// CherryPick replays a commit onto the release branch. A merge conflict is
// reported as the Conflict variant after aborting the pick; every other
// failure is an error.
func (e *Executor) CherryPick(ctx context.Context, commit string) (models.PickResult, error) {
	repo, err := gogit.PlainOpen(e.repoPath)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", e.repoPath, err)
	}

	if out, err := e.run(ctx, e.repoPath, "fetch", "origin"); err != nil {
		return nil, fmt.Errorf("git fetch: %s", trimOutput(out))
	}

	hash := plumbing.NewHash(commit)
	if _, err := repo.CommitObject(hash); err != nil {
		return nil, fmt.Errorf("resolving commit %s: %w", commit, err)
	}

	if out, err := e.run(ctx, e.repoPath, "checkout", e.releaseBranch); err != nil {
		return nil, fmt.Errorf("git checkout %s: %s", e.releaseBranch, trimOutput(out))
	}

	out, err := e.run(ctx, e.repoPath, "cherry-pick", commit)
	if err != nil {
		if strings.Contains(strings.ToLower(string(out)), "conflict") {
			// leave the worktree clean for the next invocation
			_, _ = e.run(ctx, e.repoPath, "cherry-pick", "--abort")
			return models.Conflict, nil
		}
		return nil, fmt.Errorf("git cherry-pick %s: %s", commit, trimOutput(out))
	}

	return models.Applied, nil
}

func trimOutput(out []byte) string {
	return strings.TrimSpace(string(out))
}
