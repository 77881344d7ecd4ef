package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
)

const storeVersion = 1

// storeEnvelope is the persisted shape of the slot. The version field exists
// so future field changes can migrate on read instead of breaking old rows.
type storeEnvelope struct {
	Version int           `json:"version"`
	Events  []storedEvent `json:"events"`
}

// storedEvent is the wire shape of one record. The field names match what
// the legacy browser tool wrote to its single localStorage key, so a dump
// exported from it loads unchanged. Minute fields are pointers because old
// payloads may lack them entirely.
type storedEvent struct {
	ID string `json:"id,omitempty"`

	OrganizerName        string `json:"organizerName"`
	OrganizerContact     string `json:"organizerContact"`
	OrganizerEmail       string `json:"organizerEmail"`
	OrganizerDepartment  string `json:"organizerDepartment"`
	OrganizerDesignation string `json:"organizerDesignation"`

	Title string `json:"title"`
	Type  string `json:"type"`
	Venue string `json:"venue"`
	Date  string `json:"date"`

	StartHour   string `json:"startHour"`
	StartMinute string `json:"startMinute"`
	StartAmpm   string `json:"startAmpm"`
	EndHour     string `json:"endHour"`
	EndMinute   string `json:"endMinute"`
	EndAmpm     string `json:"endAmpm"`

	StartTimeFormatted string `json:"startTimeFormatted"`
	EndTimeFormatted   string `json:"endTimeFormatted"`

	StartMin *int `json:"startMin,omitempty"`
	EndMin   *int `json:"endMin,omitempty"`

	// Oldest payloads used these names instead of startMin/endMin. Read
	// only; new writes always carry the canonical fields.
	StartTimeMinutes *int `json:"startTimeMinutes,omitempty"`
	EndTimeMinutes   *int `json:"endTimeMinutes,omitempty"`

	TargetDepartment string `json:"targetDepartment"`
	AudienceCount    string `json:"audienceCount"`

	ResourcePersonName        string `json:"resourcePersonName"`
	ResourcePersonDesignation string `json:"resourcePersonDesignation"`
	ResourcePersonDepartment  string `json:"resourcePersonDepartment"`
	ResourcePersonCollege     string `json:"resourcePersonCollege"`
	ResourcePersonExperience  string `json:"resourcePersonExperience"`
	ResourcePersonPhoto       string `json:"resourcePersonPhoto,omitempty"`
	ResourcePersonProfile     string `json:"resourcePersonProfile,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
}

// decodeRecords accepts either the current versioned envelope or a bare JSON
// array, which is what the browser tool persisted before the envelope
// existed. Missing optional fields default to empty values.
func decodeRecords(payload []byte) ([]domain.EventRecord, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var stored []storedEvent
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &stored); err != nil {
			return nil, fmt.Errorf("unmarshal legacy array: %w", err)
		}
	} else {
		var env storeEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("unmarshal envelope: %w", err)
		}
		if env.Version > storeVersion {
			return nil, fmt.Errorf("unsupported store version %d", env.Version)
		}
		stored = env.Events
	}

	records := make([]domain.EventRecord, 0, len(stored))
	for i := range stored {
		records = append(records, stored[i].toDomain())
	}

	return records, nil
}

func encodeRecords(records []domain.EventRecord) ([]byte, error) {
	env := storeEnvelope{
		Version: storeVersion,
		Events:  make([]storedEvent, 0, len(records)),
	}
	for i := range records {
		env.Events = append(env.Events, toStored(&records[i]))
	}

	return json.Marshal(env)
}

func (s *storedEvent) toDomain() domain.EventRecord {
	rec := domain.EventRecord{
		ID: s.ID,

		OrganizerName:        s.OrganizerName,
		OrganizerContact:     s.OrganizerContact,
		OrganizerEmail:       s.OrganizerEmail,
		OrganizerDepartment:  s.OrganizerDepartment,
		OrganizerDesignation: s.OrganizerDesignation,

		Title: s.Title,
		Type:  s.Type,
		Venue: s.Venue,
		Date:  s.Date,

		Start:    domain.ClockTime{Hour: s.StartHour, Minute: s.StartMinute, Meridiem: s.StartAmpm},
		End:      domain.ClockTime{Hour: s.EndHour, Minute: s.EndMinute, Meridiem: s.EndAmpm},
		StartMin: minutesOf(s.StartMin, s.StartTimeMinutes),
		EndMin:   minutesOf(s.EndMin, s.EndTimeMinutes),

		StartDisplay: s.StartTimeFormatted,
		EndDisplay:   s.EndTimeFormatted,

		TargetDepartment: s.TargetDepartment,
		AudienceCount:    s.AudienceCount,

		ResourcePersonName:        s.ResourcePersonName,
		ResourcePersonDesignation: s.ResourcePersonDesignation,
		ResourcePersonDepartment:  s.ResourcePersonDepartment,
		ResourcePersonCollege:     s.ResourcePersonCollege,
		ResourcePersonExperience:  s.ResourcePersonExperience,
		ResourcePersonPhoto:       s.ResourcePersonPhoto,
		ResourcePersonProfile:     s.ResourcePersonProfile,
	}

	if s.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, s.CreatedAt); err == nil {
			rec.CreatedAt = ts
		}
	}

	return rec
}

// minutesOf resolves the minute value of one endpoint: canonical field
// first, then the legacy name, then zero.
func minutesOf(canonical, legacy *int) int {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}

func toStored(rec *domain.EventRecord) storedEvent {
	startMin, endMin := rec.StartMin, rec.EndMin
	s := storedEvent{
		ID: rec.ID,

		OrganizerName:        rec.OrganizerName,
		OrganizerContact:     rec.OrganizerContact,
		OrganizerEmail:       rec.OrganizerEmail,
		OrganizerDepartment:  rec.OrganizerDepartment,
		OrganizerDesignation: rec.OrganizerDesignation,

		Title: rec.Title,
		Type:  rec.Type,
		Venue: rec.Venue,
		Date:  rec.Date,

		StartHour:   rec.Start.Hour,
		StartMinute: rec.Start.Minute,
		StartAmpm:   rec.Start.Meridiem,
		EndHour:     rec.End.Hour,
		EndMinute:   rec.End.Minute,
		EndAmpm:     rec.End.Meridiem,

		StartTimeFormatted: rec.StartDisplay,
		EndTimeFormatted:   rec.EndDisplay,

		StartMin: &startMin,
		EndMin:   &endMin,

		TargetDepartment: rec.TargetDepartment,
		AudienceCount:    rec.AudienceCount,

		ResourcePersonName:        rec.ResourcePersonName,
		ResourcePersonDesignation: rec.ResourcePersonDesignation,
		ResourcePersonDepartment:  rec.ResourcePersonDepartment,
		ResourcePersonCollege:     rec.ResourcePersonCollege,
		ResourcePersonExperience:  rec.ResourcePersonExperience,
		ResourcePersonPhoto:       rec.ResourcePersonPhoto,
		ResourcePersonProfile:     rec.ResourcePersonProfile,
	}

	if !rec.CreatedAt.IsZero() {
		s.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	}

	return s
}
