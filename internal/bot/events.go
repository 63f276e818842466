package bot

import (
	"context"
	"fmt"
	"sort"

	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// UnknownEventError reports an event name with no registered handler.
type UnknownEventError struct {
	Name string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q", e.Name)
}

// handler binds an event name to its entry point.
type handler struct {
	// argNames documents the positional args following the event name
	argNames []string
	run      func(ctx context.Context, b *Bot, pr models.PullRequest, label string) error
}

// events is the authoritative registry mapping event names to handlers.
// Adding an event means adding exactly one entry here.
var events = map[string]handler{
	"pr-merged": {
		argNames: []string{"pull-request-id"},
		run: func(ctx context.Context, b *Bot, pr models.PullRequest, _ string) error {
			return b.OnMerged(ctx, pr)
		},
	},
	"pr-labeled": {
		argNames: []string{"pull-request-id", "label"},
		run: func(ctx context.Context, b *Bot, pr models.PullRequest, label string) error {
			return b.OnLabeled(ctx, pr, label)
		},
	},
	"pr-unlabeled": {
		argNames: []string{"pull-request-id", "label"},
		run: func(ctx context.Context, b *Bot, pr models.PullRequest, label string) error {
			return b.OnUnlabeled(ctx, pr, label)
		},
	},
	"cherry-pick-conflict-resolved": {
		argNames: []string{"pull-request-id"},
		run: func(ctx context.Context, b *Bot, pr models.PullRequest, _ string) error {
			return b.OnConflictResolved(ctx, pr)
		},
	},
}

func init() {
	for name, h := range events {
		if h.run == nil || len(h.argNames) == 0 {
			panic(fmt.Sprintf("event %q registered without a handler", name))
		}
	}
}

// EventNames returns the registered event names, sorted.
func EventNames() []string {
	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch looks up the handler for an event, fetches the subject PR, and
// runs the handler with it.
func (b *Bot) Dispatch(ctx context.Context, event string, args []string) error {
	h, ok := events[event]
	if !ok {
		return &UnknownEventError{Name: event}
	}
	if len(args) != len(h.argNames) {
		return fmt.Errorf("%s expects %v, got %d argument(s)", event, h.argNames, len(args))
	}

	pr, err := b.prs.GetPullRequest(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetching pull request %q: %w", args[0], err)
	}

	label := ""
	if len(args) > 1 {
		label = args[1]
	}
	return h.run(ctx, b, pr, label)
}
