package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		hour     string
		minute   string
		meridiem string
		want     int
	}{
		{"morning", "9", "00", "AM", 540},
		{"morning with minutes", "9", "30", "AM", 570},
		{"afternoon", "2", "15", "PM", 14*60 + 15},
		{"noon", "12", "00", "PM", 720},
		{"noon with minutes", "12", "30", "PM", 750},
		{"midnight", "12", "00", "AM", 0},
		{"just after midnight", "12", "05", "AM", 5},
		{"eleven pm", "11", "59", "PM", 23*60 + 59},
		{"one am", "1", "00", "AM", 60},
		{"unparseable hour coerces to zero", "abc", "30", "AM", 30},
		{"unparseable minute coerces to zero", "3", "xx", "PM", 15 * 60},
		{"empty components", "", "", "AM", 0},
		{"no meridiem passes hour through", "14", "00", "", 14 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinutes(tt.hour, tt.minute, tt.meridiem))
		})
	}
}

func TestClockTime_Minutes(t *testing.T) {
	ct := ClockTime{Hour: "9", Minute: "00", Meridiem: "AM"}
	assert.Equal(t, 540, ct.Minutes())

	ct = ClockTime{Hour: "5", Minute: "45", Meridiem: "PM"}
	assert.Equal(t, 17*60+45, ct.Minutes())
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name     string
		hour     string
		minute   string
		meridiem string
		want     string
	}{
		{"pads single digit hour", "9", "30", "AM", "09:30 AM"},
		{"pads single digit minute", "10", "5", "PM", "10:05 PM"},
		{"already padded", "11", "45", "AM", "11:45 AM"},
		{"empty components become zeros", "", "", "AM", "00:00 AM"},
		{"keeps raw pm hour", "9", "30", "PM", "09:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(tt.hour, tt.minute, tt.meridiem))
		})
	}
}

func TestClockTime_Display(t *testing.T) {
	ct := ClockTime{Hour: "2", Minute: "5", Meridiem: "PM"}
	assert.Equal(t, "02:05 PM", ct.Display())
}
