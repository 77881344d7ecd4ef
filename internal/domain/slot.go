package domain

import "strings"

// Slot is a reserved interval: a venue, a calendar date and a half-open
// minute range [StartMin, EndMin).
type Slot struct {
	Venue    string
	Date     string
	StartMin int
	EndMin   int
}

// Overlaps reports whether two slots collide. Venues compare
// case-insensitively, dates compare as exact strings, and the minute
// intervals must strictly overlap: bookings that exactly abut, where one
// ends the minute the other starts, do not collide.
func (s Slot) Overlaps(other Slot) bool {
	if !strings.EqualFold(s.Venue, other.Venue) {
		return false
	}
	if s.Date != other.Date {
		return false
	}
	return s.StartMin < other.EndMin && s.EndMin > other.StartMin
}

// FirstConflict scans the stored records in order and returns the first one
// whose slot collides with the candidate. Records always carry canonical
// minute values in memory (the store codec migrates legacy payloads on
// read), so no field fallback happens here.
func FirstConflict(candidate Slot, existing []EventRecord) (*EventRecord, bool) {
	for i := range existing {
		if candidate.Overlaps(existing[i].Slot()) {
			return &existing[i], true
		}
	}
	return nil, false
}
