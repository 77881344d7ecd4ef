package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords_Envelope(t *testing.T) {
	payload := []byte(`{
		"version": 1,
		"events": [
			{
				"id": "r1",
				"organizerName": "Alice",
				"title": "Tech Talk",
				"type": "Seminar",
				"venue": "Main Hall",
				"date": "2025-03-10",
				"startHour": "9", "startMinute": "00", "startAmpm": "AM",
				"endHour": "10", "endMinute": "00", "endAmpm": "AM",
				"startTimeFormatted": "09:00 AM",
				"endTimeFormatted": "10:00 AM",
				"startMin": 540,
				"endMin": 600,
				"createdAt": "2025-03-01T12:00:00Z"
			}
		]
	}`)

	records, err := decodeRecords(payload)

	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, "Alice", rec.OrganizerName)
	assert.Equal(t, "Main Hall", rec.Venue)
	assert.Equal(t, 540, rec.StartMin)
	assert.Equal(t, 600, rec.EndMin)
	assert.Equal(t, "09:00 AM", rec.StartDisplay)
	assert.Equal(t, domain.ClockTime{Hour: "9", Minute: "00", Meridiem: "AM"}, rec.Start)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), rec.CreatedAt)
}

func TestDecodeRecords_LegacyBareArray(t *testing.T) {
	// A dump written by the old browser tool: bare array, old minute field
	// names, no envelope.
	payload := []byte(`[
		{
			"organizerName": "Bob",
			"title": "Workshop",
			"venue": "Seminar Room",
			"date": "2025-03-11",
			"startHour": "2", "startMinute": "30", "startAmpm": "PM",
			"endHour": "4", "endMinute": "00", "endAmpm": "PM",
			"startTimeMinutes": 870,
			"endTimeMinutes": 960
		}
	]`)

	records, err := decodeRecords(payload)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 870, records[0].StartMin)
	assert.Equal(t, 960, records[0].EndMin)
	assert.Empty(t, records[0].ID)
}

func TestDecodeRecords_CanonicalMinutesWinOverLegacy(t *testing.T) {
	payload := []byte(`[{"venue": "Hall", "date": "2025-03-10", "startMin": 540, "endMin": 600, "startTimeMinutes": 1, "endTimeMinutes": 2}]`)

	records, err := decodeRecords(payload)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 540, records[0].StartMin)
	assert.Equal(t, 600, records[0].EndMin)
}

func TestDecodeRecords_MissingMinutesDefaultToZero(t *testing.T) {
	payload := []byte(`[{"venue": "Hall", "date": "2025-03-10"}]`)

	records, err := decodeRecords(payload)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].StartMin)
	assert.Equal(t, 0, records[0].EndMin)
}

func TestDecodeRecords_Empty(t *testing.T) {
	for _, payload := range [][]byte{nil, {}, []byte("  ")} {
		records, err := decodeRecords(payload)
		require.NoError(t, err)
		assert.Nil(t, records)
	}
}

func TestDecodeRecords_UnsupportedVersion(t *testing.T) {
	payload := []byte(`{"version": 2, "events": []}`)

	_, err := decodeRecords(payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store version")
}

func TestDecodeRecords_Malformed(t *testing.T) {
	_, err := decodeRecords([]byte(`{"version": `))
	require.Error(t, err)

	_, err = decodeRecords([]byte(`[{]`))
	require.Error(t, err)
}

func TestEncodeRecords_CanonicalShape(t *testing.T) {
	records := []domain.EventRecord{
		{
			ID:           "r1",
			Venue:        "Main Hall",
			Date:         "2025-03-10",
			Start:        domain.ClockTime{Hour: "9", Minute: "00", Meridiem: "AM"},
			End:          domain.ClockTime{Hour: "10", Minute: "00", Meridiem: "AM"},
			StartMin:     540,
			EndMin:       600,
			StartDisplay: "09:00 AM",
			EndDisplay:   "10:00 AM",
			CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	payload, err := encodeRecords(records)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.JSONEq(t, "1", string(raw["version"]))

	var events []map[string]any
	require.NoError(t, json.Unmarshal(raw["events"], &events))
	require.Len(t, events, 1)

	assert.Equal(t, float64(540), events[0]["startMin"])
	assert.Equal(t, float64(600), events[0]["endMin"])

	// New writes never carry the legacy minute names.
	_, hasLegacy := events[0]["startTimeMinutes"]
	assert.False(t, hasLegacy)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := []domain.EventRecord{
		{
			ID:            "r1",
			OrganizerName: "Alice",
			Title:         "Tech Talk",
			Type:          "Seminar",
			Venue:         "Main Hall",
			Date:          "2025-03-10",
			Start:         domain.ClockTime{Hour: "9", Minute: "00", Meridiem: "AM"},
			End:           domain.ClockTime{Hour: "10", Minute: "00", Meridiem: "AM"},
			StartMin:      540,
			EndMin:        600,
			StartDisplay:  "09:00 AM",
			EndDisplay:    "10:00 AM",

			ResourcePersonName:  "Dr. Rao",
			ResourcePersonPhoto: "data:image/png;base64,AAAA",

			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	payload, err := encodeRecords(original)
	require.NoError(t, err)

	decoded, err := decodeRecords(payload)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}
