package domain

import (
	"fmt"
	"strconv"
)

// ClockTime is a 12-hour wall-clock reading kept exactly as entered on the
// booking form. The raw components are persisted alongside the derived
// minute values so display never has to reverse the 24-hour conversion.
type ClockTime struct {
	Hour     string `json:"hour"`
	Minute   string `json:"minute"`
	Meridiem string `json:"meridiem"`
}

// Minutes converts the reading to minutes since midnight.
func (t ClockTime) Minutes() int {
	return ToMinutes(t.Hour, t.Minute, t.Meridiem)
}

// Display renders the reading for event cards.
func (t ClockTime) Display() string {
	return FormatDisplay(t.Hour, t.Minute, t.Meridiem)
}

// ToMinutes normalizes a 12-hour clock reading to minutes since midnight.
// Unparseable hour or minute coerces to 0 rather than failing: presence
// validation is the form layer's job, this layer never rejects input.
// "PM" adds 12 hours below noon; "12 AM" is midnight.
func ToMinutes(hour, minute, meridiem string) int {
	h, err := strconv.Atoi(hour)
	if err != nil {
		h = 0
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		m = 0
	}
	if meridiem == "PM" && h < 12 {
		h += 12
	}
	if meridiem == "AM" && h == 12 {
		h = 0
	}
	return h*60 + m
}

// FormatDisplay renders the raw reading as zero-padded "HH:MM AM". It pads
// the components exactly as given and is intentionally not the inverse of
// ToMinutes: "09:30 PM" stays "09:30 PM", never "21:30".
func FormatDisplay(hour, minute, meridiem string) string {
	return fmt.Sprintf("%s:%s %s", pad2(hour), pad2(minute), meridiem)
}

func pad2(s string) string {
	if s == "" {
		s = "0"
	}
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
