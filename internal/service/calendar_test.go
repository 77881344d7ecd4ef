package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/akseleran/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_EventsOnDate(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	records := []domain.EventRecord{
		{ID: "r1", Title: "Tech Talk", Date: "2025-03-10"},
		{ID: "r2", Title: "Workshop", Date: "2025-03-11"},
		{ID: "r3", Title: "Orientation", Date: "2025-03-10"},
	}
	store.EXPECT().Load(mock.Anything).Return(records, nil)

	matches, err := svc.EventsOnDate(context.Background(), "2025-03-10")

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "r1", matches[0].ID)
	assert.Equal(t, "r3", matches[1].ID)
}

func TestCalendarService_EventsOnDate_NoMatches(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	store.EXPECT().Load(mock.Anything).Return(nil, nil)

	matches, err := svc.EventsOnDate(context.Background(), "2025-03-10")

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCalendarService_EventsOnDate_StoreError(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	store.EXPECT().Load(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.EventsOnDate(context.Background(), "2025-03-10")

	require.Error(t, err)
}

func TestCalendarService_DatesWithEvents(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	records := []domain.EventRecord{
		{ID: "r1", Date: "2025-03-10"},
		{ID: "r2", Date: "2025-03-10"},
		{ID: "r3", Date: "2025-03-25"},
		{ID: "r4", Date: "2025-04-01"},
	}
	store.EXPECT().Load(mock.Anything).Return(records, nil)

	days, err := svc.DatesWithEvents(context.Background(), 2025, time.March)

	require.NoError(t, err)
	assert.Equal(t, []int{10, 25}, days)
}

func TestCalendarService_DatesWithEvents_EmptyMonth(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	records := []domain.EventRecord{
		{ID: "r1", Date: "2025-03-10"},
	}
	store.EXPECT().Load(mock.Anything).Return(records, nil)

	days, err := svc.DatesWithEvents(context.Background(), 2025, time.April)

	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestCalendarService_DatesWithEvents_DecemberRollsOver(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	records := []domain.EventRecord{
		{ID: "r1", Date: "2025-12-31"},
	}
	store.EXPECT().Load(mock.Anything).Return(records, nil)

	days, err := svc.DatesWithEvents(context.Background(), 2025, time.December)

	require.NoError(t, err)
	assert.Equal(t, []int{31}, days)
}

func TestCalendarService_DatesWithEvents_LeapFebruary(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	records := []domain.EventRecord{
		{ID: "r1", Date: "2024-02-29"},
	}
	store.EXPECT().Load(mock.Anything).Return(records, nil)

	days, err := svc.DatesWithEvents(context.Background(), 2024, time.February)

	require.NoError(t, err)
	assert.Equal(t, []int{29}, days)
}

func TestCalendarService_DatesWithEvents_StoreError(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewCalendarService(store)

	store.EXPECT().Load(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.DatesWithEvents(context.Background(), 2025, time.March)

	require.Error(t, err)
}
