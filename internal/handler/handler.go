package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/akseleran/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Login(role, password string) (string, error)
}

type BookingSvc interface {
	Start(ctx context.Context, input domain.OrganizerInput) (*domain.BookingSession, error)
	StageDetails(ctx context.Context, sessionID string, input domain.DetailsInput) (*domain.BookingSession, error)
	Commit(ctx context.Context, sessionID string, input domain.ResourceInput) (*domain.EventRecord, error)
	Abandon(ctx context.Context, sessionID string) error
}

type CalendarSvc interface {
	EventsOnDate(ctx context.Context, date string) ([]domain.EventRecord, error)
	DatesWithEvents(ctx context.Context, year int, month time.Month) ([]int, error)
}

type Handler struct {
	authService     AuthSvc
	bookingService  BookingSvc
	calendarService CalendarSvc
}

func NewHandler(authService AuthSvc, bookingService BookingSvc, calendarService CalendarSvc) *Handler {
	return &Handler{
		authService:     authService,
		bookingService:  bookingService,
		calendarService: calendarService,
	}
}

// Login

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.authService.Login(req.Role, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Role: req.Role, View: view})
}

// Booking session steps

func (h *Handler) StartSession(c *ginext.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.OrganizerInput{
		Name:        req.OrganizerName,
		Contact:     req.Contact,
		Email:       req.Email,
		Department:  req.Department,
		Designation: req.Designation,
	}

	session, err := h.bookingService.Start(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session, domain.ViewStaffDetails))
}

func (h *Handler) StageDetails(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.StageDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.DetailsInput{
		Title: req.Title,
		Type:  req.Type,
		Venue: req.Venue,
		Date:  req.Date,

		StartHour:     req.StartHour,
		StartMinute:   req.StartMinute,
		StartMeridiem: req.StartMeridiem,
		EndHour:       req.EndHour,
		EndMinute:     req.EndMinute,
		EndMeridiem:   req.EndMeridiem,

		TargetDepartment: req.TargetDepartment,
		AudienceCount:    req.AudienceCount,
	}

	session, err := h.bookingService.StageDetails(c.Request.Context(), sessionID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session, domain.ViewStaffResource))
}

// SubmitBooking takes the final step as multipart form data so the photo
// and profile document travel with the resource-person fields.
func (h *Handler) SubmitBooking(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	input := domain.ResourceInput{
		Name:        c.PostForm("resource_person_name"),
		Designation: c.PostForm("resource_person_designation"),
		Department:  c.PostForm("resource_person_department"),
		College:     c.PostForm("resource_person_college"),
		Experience:  c.PostForm("resource_person_experience"),
	}

	photo, err := formUpload(c, "resource_person_photo")
	if err != nil {
		h.handleError(c, err)
		return
	}
	if photo != nil {
		defer photo.close()
		input.Photo = &photo.FileUpload
	}

	profile, err := formUpload(c, "resource_person_profile")
	if err != nil {
		h.handleError(c, err)
		return
	}
	if profile != nil {
		defer profile.close()
		input.Profile = &profile.FileUpload
	}

	record, err := h.bookingService.Commit(c.Request.Context(), sessionID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitResponse{
		View:  domain.ViewLogin,
		Event: dto.ToEventCardResponse(record),
	})
}

func (h *Handler) AbandonSession(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	if err := h.bookingService.Abandon(c.Request.Context(), sessionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Calendar

func (h *Handler) Calendar(c *ginext.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month"})
		return
	}

	days, err := h.calendarService.DatesWithEvents(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarResponse{Year: year, Month: month, Days: days})
}

func (h *Handler) EventsByDate(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	records, err := h.calendarService.EventsOnDate(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventCardResponse, 0, len(records))
	for i := range records {
		resp = append(resp, dto.ToEventCardResponse(&records[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrSlotTakenMeanwhile):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEndNotAfterStart),
		errors.Is(err, domain.ErrSessionStep),
		errors.Is(err, domain.ErrEmbedFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

type openedUpload struct {
	domain.FileUpload
	close func() error
}

func formUpload(c *ginext.Context, field string) (*openedUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Absent file input: the attachment is optional.
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, domain.ErrEmbedFailed
	}

	return &openedUpload{
		FileUpload: domain.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		},
		close: f.Close,
	}, nil
}
