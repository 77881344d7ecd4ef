package repository

import (
	"context"
	"sync"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
)

// SessionRepository holds booking sessions in process memory. The scratch
// state of a half-entered booking is deliberately transient: it never
// survives a restart, the same way the original flow lost its form state
// with the page. Sessions expire after the configured TTL; each completed
// step slides the deadline forward.
type SessionRepository struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]domain.BookingSession
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		ttl:      ttl,
		sessions: make(map[string]domain.BookingSession),
	}
}

func (r *SessionRepository) Create(_ context.Context, session *domain.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ExpiresAt = time.Now().Add(r.ttl)
	r.sessions[session.ID] = *session

	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*domain.BookingSession, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	copied := session
	return &copied, nil
}

func (r *SessionRepository) Update(_ context.Context, session *domain.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}

	session.UpdatedAt = time.Now().UTC()
	session.ExpiresAt = time.Now().Add(r.ttl)
	r.sessions[session.ID] = *session

	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

// DeleteExpired drops every session past its deadline and returns them for
// logging.
func (r *SessionRepository) DeleteExpired(_ context.Context) ([]*domain.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var expired []*domain.BookingSession
	for id, session := range r.sessions {
		if now.After(session.ExpiresAt) {
			copied := session
			expired = append(expired, &copied)
			delete(r.sessions, id)
		}
	}

	return expired, nil
}
