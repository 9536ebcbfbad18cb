package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format for booking and comment timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime marshals as "yyyy-MM-dd HH:mm:ss" in JSON bodies.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}
	t, err := time.Parse(DateTimeLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid datetime %q, expected %q: %w", raw, DateTimeLayout, err)
	}
	d.Time = t
	return nil
}
