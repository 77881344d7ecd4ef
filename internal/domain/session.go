package domain

import "time"

// SessionStep is the furthest completed stage of a booking session.
type SessionStep string

const (
	StepOrganizer SessionStep = "organizer"
	StepDetails   SessionStep = "details"
)

// BookingSession is the scratch state a booking accumulates across the
// multi-step entry flow before it becomes an immutable EventRecord. It is
// owned by a single booking flow, mutated one step at a time, consumed
// whole at commit and then discarded.
type BookingSession struct {
	ID        string      `json:"id"`
	Step      SessionStep `json:"step"`
	Organizer OrganizerInput
	Details   StagedDetails
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StagedDetails holds the scheduling fields after the conflict check at the
// details step has passed. Minute values are already derived here so commit
// re-checks the exact same candidate.
type StagedDetails struct {
	Title string
	Type  string
	Venue string
	Date  string

	Start    ClockTime
	End      ClockTime
	StartMin int
	EndMin   int

	TargetDepartment string
	AudienceCount    string
}

// Slot returns the interval the staged details would reserve.
func (d StagedDetails) Slot() Slot {
	return Slot{Venue: d.Venue, Date: d.Date, StartMin: d.StartMin, EndMin: d.EndMin}
}
