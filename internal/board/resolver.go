// Package board resolves the release project boards and mutates their items.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/github"
	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// searcher is the slice of the API client the resolver needs.
type searcher interface {
	SearchProjects(ctx context.Context, org, query string) ([]models.Project, error)
}

// Resolver finds a release board by role.
type Resolver struct {
	cfg config.Config
	api searcher
}

func NewResolver(cfg config.Config, api searcher) *Resolver {
	return &Resolver{cfg: cfg, api: api}
}

// Resolve returns the single project board for a role. In test mode only the
// "TEST "-prefixed variant matches; in normal mode only the exact production
// title matches. A missing board is fatal for the caller.
func (r *Resolver) Resolve(ctx context.Context, role models.ProjectRole) (models.Project, error) {
	projects, err := r.api.SearchProjects(ctx, r.cfg.GitHub.Org, role.BaseTitle())
	if err != nil {
		return models.Project{}, fmt.Errorf("searching %s project: %w", role, err)
	}

	want := r.cfg.ProjectTitle(role)
	for _, p := range projects {
		if r.matches(p.Title, want) {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("no %s project matches %q: %w", role, want, github.ErrNotFound)
}

func (r *Resolver) matches(title, want string) bool {
	if r.cfg.TestMode {
		return title == want || strings.HasPrefix(title, want+" ")
	}
	return title == want
}
