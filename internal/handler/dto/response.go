package dto

import (
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
)

type LoginResponse struct {
	Role string `json:"role"`
	View string `json:"view"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
	View      string `json:"view"`
}

type SubmitResponse struct {
	View  string            `json:"view"`
	Event EventCardResponse `json:"event"`
}

type CalendarResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

// EventCardResponse is the detail card students see for a chosen date.
type EventCardResponse struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Venue string `json:"venue"`
	Date  string `json:"date"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	TargetDepartment string `json:"target_department"`
	AudienceCount    string `json:"audience_count"`

	OrganizerName       string `json:"organizer_name"`
	OrganizerDepartment string `json:"organizer_department"`

	ResourcePersonName        string `json:"resource_person_name"`
	ResourcePersonDesignation string `json:"resource_person_designation"`
	ResourcePersonCollege     string `json:"resource_person_college"`
	ResourcePersonExperience  string `json:"resource_person_experience"`
	ResourcePersonPhoto       string `json:"resource_person_photo,omitempty"`
	ResourcePersonProfile     string `json:"resource_person_profile,omitempty"`

	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.BookingSession, view string) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		Step:      string(s.Step),
		View:      view,
	}
}

func ToEventCardResponse(e *domain.EventRecord) EventCardResponse {
	return EventCardResponse{
		Title: e.Title,
		Type:  e.Type,
		Venue: e.Venue,
		Date:  e.Date,

		StartTime: e.StartDisplay,
		EndTime:   e.EndDisplay,

		TargetDepartment: e.TargetDepartment,
		AudienceCount:    e.AudienceCount,

		OrganizerName:       e.OrganizerName,
		OrganizerDepartment: e.OrganizerDepartment,

		ResourcePersonName:        e.ResourcePersonName,
		ResourcePersonDesignation: e.ResourcePersonDesignation,
		ResourcePersonCollege:     e.ResourcePersonCollege,
		ResourcePersonExperience:  e.ResourcePersonExperience,
		ResourcePersonPhoto:       e.ResourcePersonPhoto,
		ResourcePersonProfile:     e.ResourcePersonProfile,

		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
