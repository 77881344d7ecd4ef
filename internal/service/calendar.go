package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/akseleran/VenueBooker/internal/service/ports"
)

// CalendarService derives the month view from the store. Nothing is cached:
// every render recomputes from the full record list, so a booking committed
// a moment ago shows up on the next navigation.
type CalendarService struct {
	store ports.EventStore
}

func NewCalendarService(store ports.EventStore) *CalendarService {
	return &CalendarService{store: store}
}

// EventsOnDate returns every record on the given date, preserving store
// order. An empty result is common and not an error.
func (s *CalendarService) EventsOnDate(ctx context.Context, date string) ([]domain.EventRecord, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	matches := make([]domain.EventRecord, 0)
	for i := range records {
		if records[i].Date == date {
			matches = append(matches, records[i])
		}
	}

	return matches, nil
}

// DatesWithEvents returns the days of the given month that have at least
// one event, in ascending order.
func (s *CalendarService) DatesWithEvents(ctx context.Context, year int, month time.Month) ([]int, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	days := make([]int, 0)
	for d := 1; d <= daysIn(year, month); d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		for i := range records {
			if records[i].Date == date {
				days = append(days, d)
				break
			}
		}
	}

	return days, nil
}

// daysIn counts the days of a month via the day-zero trick.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
