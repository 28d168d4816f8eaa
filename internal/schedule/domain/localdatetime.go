package domain

import (
	"fmt"
	"time"
)

// LocalDateTimeLayout is the wire format for schedule timestamps. The backend
// serializes java.time.LocalDateTime without a zone offset, so values are
// interpreted in the device's local time.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// DayLayout is the wire format for calendar dates in query parameters.
const DayLayout = "2006-01-02"

// LocalDateTime is a second-precision timestamp in the fixed
// "YYYY-MM-DDTHH:mm:ss" format, with no timezone offset on the wire.
type LocalDateTime struct {
	t time.Time
}

// NewLocalDateTime truncates t to second precision.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{t: t.Truncate(time.Second)}
}

// ParseLocalDateTime parses a timestamp in LocalDateTimeLayout.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.Local)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("parse local datetime %q: %w", s, err)
	}
	return LocalDateTime{t: t}, nil
}

// Time returns the underlying time value.
func (l LocalDateTime) Time() time.Time { return l.t }

// IsZero reports whether l is the zero timestamp.
func (l LocalDateTime) IsZero() bool { return l.t.IsZero() }

// Before reports whether l is strictly earlier than other.
func (l LocalDateTime) Before(other LocalDateTime) bool { return l.t.Before(other.t) }

// String renders the timestamp in the wire layout.
func (l LocalDateTime) String() string { return l.t.Format(LocalDateTimeLayout) }

// MarshalJSON renders the timestamp as a JSON string in the wire layout.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string in the wire layout.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("local datetime must be a JSON string, got %s", data)
	}
	parsed, err := ParseLocalDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
