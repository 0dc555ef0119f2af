package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate accepts "2006-01-02" or RFC3339 and returns the calendar date
// at UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339, raw)
		if err2 != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %v", raw, err)
		}
		t = t2.UTC()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
