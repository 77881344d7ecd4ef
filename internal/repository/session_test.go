package repository

import (
	"context"
	"testing"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	session := &domain.BookingSession{
		ID:        "s1",
		Step:      domain.StepOrganizer,
		Organizer: domain.OrganizerInput{Name: "Alice"},
	}
	require.NoError(t, repo.Create(ctx, session))
	assert.False(t, session.ExpiresAt.IsZero())

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "Alice", got.Organizer.Name)
}

func TestSessionRepository_GetReturnsCopy(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s1", Step: domain.StepOrganizer}))

	first, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	first.Step = domain.StepDetails

	second, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepOrganizer, second.Step)
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	_, err := repo.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Get_Expired(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s1"}))

	time.Sleep(40 * time.Millisecond)

	_, err := repo.Get(ctx, "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Update(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	session := &domain.BookingSession{ID: "s1", Step: domain.StepOrganizer}
	require.NoError(t, repo.Create(ctx, session))

	session.Step = domain.StepDetails
	session.Details = domain.StagedDetails{Venue: "Main Hall"}
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, got.Step)
	assert.Equal(t, "Main Hall", got.Details.Venue)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSessionRepository_Update_SlidesDeadline(t *testing.T) {
	repo := NewSessionRepository(50 * time.Millisecond)
	ctx := context.Background()

	session := &domain.BookingSession{ID: "s1", Step: domain.StepOrganizer}
	require.NoError(t, repo.Create(ctx, session))

	// Each completed step buys the session another full TTL.
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, repo.Update(ctx, session))
	time.Sleep(30 * time.Millisecond)

	_, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
}

func TestSessionRepository_Update_NotFound(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	err := repo.Update(context.Background(), &domain.BookingSession{ID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s1"}))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Delete_NotFound(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s1", Step: domain.StepOrganizer}))
	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s2", Step: domain.StepDetails}))

	time.Sleep(40 * time.Millisecond)

	fresh := &domain.BookingSession{ID: "s3"}
	require.NoError(t, repo.Create(ctx, fresh))

	expired, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Len(t, expired, 2)

	_, err = repo.Get(ctx, "s3")
	assert.NoError(t, err)
}

func TestSessionRepository_DeleteExpired_NoneExpired(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.BookingSession{ID: "s1"}))

	expired, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)
}
