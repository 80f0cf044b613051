package compra

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is how purchase and payment dates travel on the wire.
const DateLayout = "2006-01-02"

// ParseDate accepts a plain date or a full RFC 3339 timestamp and returns
// the calendar date in UTC. An empty string yields today.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return truncateDay(now), nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return truncateDay(t), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
