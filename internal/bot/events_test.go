package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

func TestEventNames(t *testing.T) {
	want := []string{
		"cherry-pick-conflict-resolved",
		"pr-labeled",
		"pr-merged",
		"pr-unlabeled",
	}
	assert.Equal(t, want, EventNames())
}

func TestDispatchUnknownEvent(t *testing.T) {
	f := newFixture()

	err := f.bot.Dispatch(context.Background(), "pr-reopened", []string{"PR1"})
	require.Error(t, err)

	var unknown *UnknownEventError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "pr-reopened", unknown.Name)
}

func TestDispatchArityMismatch(t *testing.T) {
	f := newFixture()

	assert.Error(t, f.bot.Dispatch(context.Background(), "pr-merged", nil))
	assert.Error(t, f.bot.Dispatch(context.Background(), "pr-merged", []string{"PR1", "extra"}))
	assert.Error(t, f.bot.Dispatch(context.Background(), "pr-labeled", []string{"PR1"}))
}

func TestDispatchFetchesAndRoutes(t *testing.T) {
	f := newFixture()
	f.source.prs["PR1"] = mergedPR("fix: null pointer")

	err := f.bot.Dispatch(context.Background(), "pr-merged", []string{"PR1"})
	require.NoError(t, err)

	require.Len(t, f.board.calls, 1)
	assert.Equal(t, "PROJ_NEXT", f.board.calls[0].projectID)
}

func TestDispatchPassesLabelThrough(t *testing.T) {
	f := newFixture()
	f.source.prs["PR2"] = models.PullRequest{ID: "PR2", State: models.PRStateOpen}

	err := f.bot.Dispatch(context.Background(), "pr-labeled", []string{"PR2", "to-cherry-pick"})
	require.NoError(t, err)

	require.Len(t, f.board.calls, 1)
	assert.Equal(t, models.FixOpen, f.board.calls[0].status)
}

func TestDispatchFetchFailure(t *testing.T) {
	f := newFixture()
	f.source.err = errors.New("api exploded")

	err := f.bot.Dispatch(context.Background(), "pr-merged", []string{"PR1"})
	require.ErrorIs(t, err, f.source.err)
	assert.Empty(t, f.board.calls)
}
