package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseUserTime parses either RFC3339 or YYYY-MM-DD and returns the instant
// in UTC. A bare date means midnight UTC.
func ParseUserTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t.UTC(), nil
	}

	t, err = time.Parse(dateLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}
	return t, nil
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
