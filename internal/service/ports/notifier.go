package ports

import (
	"context"

	"github.com/akseleran/VenueBooker/internal/domain"
)

type EventNotifier interface {
	NotifyEventBooked(ctx context.Context, record *domain.EventRecord)
}
