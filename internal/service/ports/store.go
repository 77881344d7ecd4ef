package ports

import (
	"context"

	"github.com/akseleran/VenueBooker/internal/domain"
)

// EventStore is the single persisted slot holding every committed record.
// Load and Save always move the whole list and there is no compare-and-swap
// primitive: two writers can interleave between one caller's Load and Save.
// The booking service narrows that window with a re-check right before
// saving but cannot close it; that residual race is an accepted limitation
// of the slot layout.
type EventStore interface {
	Load(ctx context.Context) ([]domain.EventRecord, error)
	Save(ctx context.Context, records []domain.EventRecord) error
}
