package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM time
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when a time arithmetic result leaves the day
	ErrTimeOutOfRange = errors.New("time is out of the 00:00-23:59 range")
)

// TimeString represents a time of day as an "HH:MM" string.
// It is the wire and storage format for slot start times and keeps
// comparisons cheap without dragging full time.Time values (and their
// date components) through the booking logic.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and normalizes s ("9:30" becomes "09:30").
func NewTimeStringFromString(s string) (TimeString, error) {
	m, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return fromMinutes(m), nil
}

// String returns the normalized HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare lexicographically, which matches the numeric
// order for normalized HH:MM strings.
func (t TimeString) IsBefore(other TimeString) bool {
	tm, terr := parseMinutes(string(t))
	om, oerr := parseMinutes(string(other))
	if terr != nil || oerr != nil {
		return string(t) < string(other)
	}
	return tm < om
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal reports whether both values denote the same minute of the day.
func (t TimeString) Equal(other TimeString) bool {
	return !t.IsBefore(other) && !other.IsBefore(t)
}

// AddMinutes returns the time m minutes later. Results past 24:00 are an
// error rather than wrapping to the next day: slots never cross midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	total := base + m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, m)
	}
	if total == minutesPerDay {
		// Closing time boundary: representable so that slotEnd == close compares.
		return TimeString("24:00"), nil
	}
	return fromMinutes(total), nil
}

// Value implements driver.Valuer for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres returns TIME columns as
// "HH:MM:SS"; the seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(s) < 4 || len(s) > 5 || s[len(s)-3] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if h == 24 && m == 0 {
		return minutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return h*60 + m, nil
}

func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
