package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// ErrUnknownStatus marks a status name missing from a board's declared
// options. The status enumeration is fixed, so hitting this means the board
// itself is misconfigured.
var ErrUnknownStatus = errors.New("unknown status option")

// mutator is the slice of the API client the board needs.
type mutator interface {
	GetStatusField(ctx context.Context, projectID string) (models.StatusField, error)
	AddItem(ctx context.Context, projectID, contentID string) (string, error)
	SetItemStatus(ctx context.Context, projectID, itemID, fieldID, optionID string) error
	DeleteItem(ctx context.Context, projectID, itemID string) error
}

// Board mutates project items.
type Board struct {
	api mutator
}

func New(api mutator) *Board {
	return &Board{api: api}
}

// AddItem adds a subject (PR or issue) to a project and returns the item id.
// Adding an already-present subject returns the existing item id.
func (b *Board) AddItem(ctx context.Context, projectID, subjectID string) (string, error) {
	itemID, err := b.api.AddItem(ctx, projectID, subjectID)
	if err != nil {
		return "", fmt.Errorf("adding %s to project: %w", subjectID, err)
	}
	return itemID, nil
}

// SetStatus sets an item's status field. Two steps: fetch the status field
// descriptor, then resolve the option name and submit the mutation.
func (b *Board) SetStatus(ctx context.Context, projectID, itemID string, status models.Status) error {
	field, err := b.api.GetStatusField(ctx, projectID)
	if err != nil {
		return fmt.Errorf("fetching status field: %w", err)
	}

	optionID, ok := field.OptionID(status.Display())
	if !ok {
		return fmt.Errorf("status %q not among the board's options: %w", status.Display(), ErrUnknownStatus)
	}

	if err := b.api.SetItemStatus(ctx, projectID, itemID, field.ID, optionID); err != nil {
		return fmt.Errorf("setting status %q: %w", status.Display(), err)
	}
	return nil
}

// AddWithStatus performs the add+set pair every handler needs.
func (b *Board) AddWithStatus(ctx context.Context, projectID, subjectID string, status models.Status) (string, error) {
	itemID, err := b.AddItem(ctx, projectID, subjectID)
	if err != nil {
		return "", err
	}
	if err := b.SetStatus(ctx, projectID, itemID, status); err != nil {
		return "", err
	}
	return itemID, nil
}

// RemoveItem deletes a subject's item from a project. The delete mutation
// needs an item id, so the subject is resolved through the idempotent add,
// which returns the existing item's id.
func (b *Board) RemoveItem(ctx context.Context, projectID, subjectID string) error {
	itemID, err := b.api.AddItem(ctx, projectID, subjectID)
	if err != nil {
		return fmt.Errorf("resolving item for %s: %w", subjectID, err)
	}
	if err := b.api.DeleteItem(ctx, projectID, itemID); err != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, err)
	}
	return nil
}
