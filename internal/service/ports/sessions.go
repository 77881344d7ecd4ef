package ports

import (
	"context"

	"github.com/akseleran/VenueBooker/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, session *domain.BookingSession) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Update(ctx context.Context, session *domain.BookingSession) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) ([]*domain.BookingSession, error)
}
