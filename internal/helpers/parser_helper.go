package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseStartTime accepts the plain form default, what datetime-local inputs
// send, and RFC 3339. Times without a zone are taken as UTC.
func ParseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time format %q", value)
}
