package scheduler

import (
	"context"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	ExpireStale(ctx context.Context) ([]*domain.BookingSession, error)
}

// Scheduler periodically drops booking sessions whose deadline passed, so
// abandoned half-entered bookings do not pile up in memory.
type Scheduler struct {
	bookingService sessionSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to sweep stale sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, session := range expired {
		s.logger.Info("booking session expired",
			logger.String("session_id", session.ID),
			logger.String("step", string(session.Step)),
		)
	}
}
