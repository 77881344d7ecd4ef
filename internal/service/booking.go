package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/akseleran/VenueBooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService drives the three-step check-then-commit flow: organizer
// info starts a session, event details are staged only after a conflict
// check against the store, and the final submit re-checks against the
// freshest snapshot before appending and persisting.
type BookingService struct {
	store    ports.EventStore
	sessions ports.SessionRepo
	embedder ports.Embedder
	notifier ports.EventNotifier
	logger   logger.Logger
}

func NewBookingService(
	store ports.EventStore,
	sessions ports.SessionRepo,
	embedder ports.Embedder,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		sessions: sessions,
		embedder: embedder,
		notifier: notifier,
		logger:   logger,
	}
}

// Start opens a booking session with the organizer fields.
func (s *BookingService) Start(ctx context.Context, input domain.OrganizerInput) (*domain.BookingSession, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: organizer name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	session := &domain.BookingSession{
		ID:        uuid.New().String(),
		Step:      domain.StepOrganizer,
		Organizer: input,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("booking session started",
		logger.String("session_id", session.ID),
	)

	return session, nil
}

// StageDetails validates the scheduling fields, checks the candidate slot
// against the store's current snapshot and, only if it is free, merges the
// details into the session scratch. On conflict nothing is staged: the
// caller must change venue, date or time and retry this step.
func (s *BookingService) StageDetails(ctx context.Context, sessionID string, input domain.DetailsInput) (*domain.BookingSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if input.Title == "" || input.Type == "" || input.Venue == "" || input.Date == "" ||
		input.StartHour == "" || input.EndHour == "" {
		return nil, fmt.Errorf("%w: title, type, venue, date and times are required", domain.ErrValidation)
	}

	start := domain.ClockTime{
		Hour:     input.StartHour,
		Minute:   orDefault(input.StartMinute, "00"),
		Meridiem: orDefault(input.StartMeridiem, "AM"),
	}
	end := domain.ClockTime{
		Hour:     input.EndHour,
		Minute:   orDefault(input.EndMinute, "00"),
		Meridiem: orDefault(input.EndMeridiem, "AM"),
	}
	startMin, endMin := start.Minutes(), end.Minutes()
	if endMin <= startMin {
		return nil, domain.ErrEndNotAfterStart
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	details := domain.StagedDetails{
		Title:            input.Title,
		Type:             input.Type,
		Venue:            input.Venue,
		Date:             input.Date,
		Start:            start,
		End:              end,
		StartMin:         startMin,
		EndMin:           endMin,
		TargetDepartment: input.TargetDepartment,
		AudienceCount:    input.AudienceCount,
	}
	if _, taken := domain.FirstConflict(details.Slot(), records); taken {
		return nil, domain.ErrSlotTaken
	}

	session.Details = details
	session.Step = domain.StepDetails
	if err = s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Info("event details staged",
		logger.String("session_id", session.ID),
		logger.String("venue", details.Venue),
		logger.String("date", details.Date),
	)

	return session, nil
}

// Commit finalizes the booking: it waits for the attachment embeds,
// assembles the immutable record, re-runs the conflict check against a
// fresh snapshot to catch bookings saved since the details were staged,
// appends, persists the whole slot and clears the session. Any failure
// before the persist leaves both the store and the session untouched so the
// caller can retry.
func (s *BookingService) Commit(ctx context.Context, sessionID string, input domain.ResourceInput) (*domain.EventRecord, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Step != domain.StepDetails {
		return nil, fmt.Errorf("%w: event details not staged", domain.ErrSessionStep)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: resource person name is required", domain.ErrValidation)
	}

	// Both embeds must finish before any store I/O happens.
	photo, err := s.embedder.Embed(ctx, input.Photo)
	if err != nil {
		return nil, fmt.Errorf("embed photo: %w", err)
	}
	profile, err := s.embedder.Embed(ctx, input.Profile)
	if err != nil {
		return nil, fmt.Errorf("embed profile: %w", err)
	}

	record := assembleRecord(session, input, photo, profile)

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	if _, taken := domain.FirstConflict(record.Slot(), records); taken {
		return nil, domain.ErrSlotTakenMeanwhile
	}

	records = append(records, *record)
	if err = s.store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("persist store: %w", err)
	}

	if err = s.sessions.Delete(ctx, session.ID); err != nil {
		s.logger.Error("failed to clear committed session",
			logger.String("session_id", session.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("event committed",
		logger.String("event_id", record.ID),
		logger.String("venue", record.Venue),
		logger.String("date", record.Date),
		logger.Int("start_min", record.StartMin),
		logger.Int("end_min", record.EndMin),
	)

	go s.notifier.NotifyEventBooked(context.WithoutCancel(ctx), record)

	return record, nil
}

// Abandon discards a session and its staged fields.
func (s *BookingService) Abandon(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("booking session abandoned",
		logger.String("session_id", sessionID),
	)

	return nil
}

// ExpireStale drops sessions past their deadline. Called by the sweeper.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.BookingSession, error) {
	expired, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete expired: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale booking sessions dropped",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}

func assembleRecord(session *domain.BookingSession, input domain.ResourceInput, photo, profile string) *domain.EventRecord {
	d := session.Details
	return &domain.EventRecord{
		ID: uuid.New().String(),

		OrganizerName:        session.Organizer.Name,
		OrganizerContact:     session.Organizer.Contact,
		OrganizerEmail:       session.Organizer.Email,
		OrganizerDepartment:  session.Organizer.Department,
		OrganizerDesignation: session.Organizer.Designation,

		Title: d.Title,
		Type:  d.Type,
		Venue: d.Venue,
		Date:  d.Date,

		Start:    d.Start,
		End:      d.End,
		StartMin: d.StartMin,
		EndMin:   d.EndMin,

		StartDisplay: d.Start.Display(),
		EndDisplay:   d.End.Display(),

		TargetDepartment: d.TargetDepartment,
		AudienceCount:    d.AudienceCount,

		ResourcePersonName:        input.Name,
		ResourcePersonDesignation: input.Designation,
		ResourcePersonDepartment:  input.Department,
		ResourcePersonCollege:     input.College,
		ResourcePersonExperience:  input.Experience,
		ResourcePersonPhoto:       photo,
		ResourcePersonProfile:     profile,

		CreatedAt: time.Now().UTC(),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
