package domain

import (
	"io"
	"time"
)

// EventRecord is the unit of persistence: one committed booking. Records are
// immutable once committed and the store only ever appends them.
type EventRecord struct {
	// ID is stamped at commit time and used for logging and notifications
	// only; nothing looks records up by it.
	ID string `json:"id"`

	OrganizerName        string `json:"organizer_name"`
	OrganizerContact     string `json:"organizer_contact"`
	OrganizerEmail       string `json:"organizer_email"`
	OrganizerDepartment  string `json:"organizer_department"`
	OrganizerDesignation string `json:"organizer_designation"`

	Title string `json:"title"`
	Type  string `json:"type"`
	Venue string `json:"venue"`
	Date  string `json:"date"` // YYYY-MM-DD, compared as an exact string

	Start    ClockTime `json:"start"`
	End      ClockTime `json:"end"`
	StartMin int       `json:"start_min"`
	EndMin   int       `json:"end_min"`

	// Display strings are computed once at commit time from the raw clock
	// components and never recomputed later.
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`

	TargetDepartment string `json:"target_department"`
	AudienceCount    string `json:"audience_count"`

	ResourcePersonName        string `json:"resource_person_name"`
	ResourcePersonDesignation string `json:"resource_person_designation"`
	ResourcePersonDepartment  string `json:"resource_person_department"`
	ResourcePersonCollege     string `json:"resource_person_college"`
	ResourcePersonExperience  string `json:"resource_person_experience"`

	// Data URLs; empty string means no attachment.
	ResourcePersonPhoto   string `json:"resource_person_photo,omitempty"`
	ResourcePersonProfile string `json:"resource_person_profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Slot returns the interval this record reserves.
func (e *EventRecord) Slot() Slot {
	return Slot{Venue: e.Venue, Date: e.Date, StartMin: e.StartMin, EndMin: e.EndMin}
}

// OrganizerInput carries the first form step.
type OrganizerInput struct {
	Name        string
	Contact     string
	Email       string
	Department  string
	Designation string
}

// DetailsInput carries the second form step: scheduling fields plus the raw
// 12-hour time components as the form submits them.
type DetailsInput struct {
	Title string
	Type  string
	Venue string
	Date  string

	StartHour     string
	StartMinute   string
	StartMeridiem string
	EndHour       string
	EndMinute     string
	EndMeridiem   string

	TargetDepartment string
	AudienceCount    string
}

// ResourceInput carries the final form step.
type ResourceInput struct {
	Name        string
	Designation string
	Department  string
	College     string
	Experience  string

	Photo   *FileUpload
	Profile *FileUpload
}

// FileUpload is an attachment handed to the embedder. Nil means the field
// was left empty.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
