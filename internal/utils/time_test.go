package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "valid date", input: "1990-06-15", ok: true},
		{name: "out of range day rejected", input: "2023-02-31", ok: false},
		{name: "out of range month rejected", input: "2023-13-01", ok: false},
		{name: "wrong layout", input: "15/06/1990", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.input, parsed.Format(DateLayout))
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "rfc3339", input: "2026-03-10T09:00:00Z", ok: true},
		{name: "no zone", input: "2026-03-10T09:00:00", ok: true},
		{name: "minutes only", input: "2026-03-10T09:00", ok: true},
		{name: "space separator", input: "2026-03-10 09:00", ok: true},
		{name: "garbage", input: "soon", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDateTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, 2026, parsed.Year())
			}
		})
	}
}

func TestYearsSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{name: "anniversary passed this year", date: "1996-01-01", expected: 30},
		{name: "anniversary today counts", date: "1996-03-10", expected: 30},
		{name: "anniversary not yet reached", date: "1996-03-11", expected: 29},
		{name: "license held two and a half years", date: "2023-09-10", expected: 2},
		{name: "future date", date: "2027-01-01", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseDate(tt.date)
			require.True(t, ok)
			assert.Equal(t, tt.expected, YearsSince(date, now))
		})
	}
}

func TestBilledDays(t *testing.T) {
	pickup := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dropoff  time.Time
		expected int
	}{
		{name: "exactly 24h", dropoff: pickup.Add(24 * time.Hour), expected: 1},
		{name: "24h plus a minute bills second day", dropoff: pickup.Add(24*time.Hour + time.Minute), expected: 2},
		{name: "one hour is one day", dropoff: pickup.Add(time.Hour), expected: 1},
		{name: "exactly 72h", dropoff: pickup.Add(72 * time.Hour), expected: 3},
		{name: "equal instants", dropoff: pickup, expected: 0},
		{name: "dropoff before pickup", dropoff: pickup.Add(-time.Hour), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BilledDays(pickup, tt.dropoff))
		})
	}
}
