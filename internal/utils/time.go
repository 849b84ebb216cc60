package utils

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDate parses a plain calendar date. time.Parse already rejects
// out-of-range components (e.g. 2023-02-31), so a parsed date always
// matches the exact day/month/year supplied.
func ParseDate(dateStr string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses an ISO-8601 date-time in any of the accepted
// layouts, trying the most specific first.
func ParseDateTime(value string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearsSince returns the number of whole years elapsed between date and now,
// i.e. the year difference minus one when the anniversary has not yet been
// reached. Returns -1 when date is in the future.
func YearsSince(date, now time.Time) int {
	years := now.Year() - date.Year()
	anniversary := date.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return -1
	}
	return years
}

// BilledDays computes the chargeable day count between pickup and dropoff:
// full 24-hour periods elapsed, plus one extra day for any partial
// remainder. Non-chronological ranges resolve to zero.
func BilledDays(pickup, dropoff time.Time) int {
	if !dropoff.After(pickup) {
		return 0
	}

	billingPeriod := HoursPerBilledDay * time.Hour
	elapsed := dropoff.Sub(pickup)
	days := int(elapsed / billingPeriod)
	if elapsed%billingPeriod > 0 {
		days++
	}
	return days
}

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseTimeISO(timeStr string) (time.Time, error) {
	return time.Parse(time.RFC3339, timeStr)
}
