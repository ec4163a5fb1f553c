package domain

import (
	"regexp"
	"strings"
	"time"
)

// ValidationError is one violated form rule. A failed submission carries
// the full ordered list of these, one entry per rule, never a single
// aggregate error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	// Letters (including accented Latin), spaces, at least two characters
	nameRegexp = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]{2,}$`)

	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// 24-hour H:MM or HH:MM
	timeRegexp = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

	nonDigitRegexp = regexp.MustCompile(`\D`)
)

// ValidateName checks the client name rule: at least two characters,
// letters (accented Latin included) and spaces only.
func ValidateName(name string) bool {
	return nameRegexp.MatchString(strings.TrimSpace(name))
}

// ValidateEmail checks the standard local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidatePhone strips every non-digit character and accepts exactly 10
// digits (national) or 12 (with country prefix).
func ValidatePhone(phone string) bool {
	digits := nonDigitRegexp.ReplaceAllString(phone, "")
	return len(digits) == PhoneDigitsShort || len(digits) == PhoneDigitsLong
}

// ValidateTimeFormat checks the 24-hour H:MM / HH:MM pattern.
func ValidateTimeFormat(t string) bool {
	return timeRegexp.MatchString(t)
}

// IsDateInPast compares at day granularity, ignoring time of day.
// A date equal to today is not in the past.
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay reports whether both instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
