package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// ParseDate parses a date string in "YYYY-MM-DD" format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := ParseDate(dateStr)
	return date, err == nil
}

var clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a wall-clock string in "HH:MM" format and returns the hour
// and minute components.
func ParseClock(clockStr string) (hour, minute int, ok bool) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(clockStr))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// ClockMinutes converts a "HH:MM" string to minutes since midnight.
func ClockMinutes(clockStr string) (int, bool) {
	h, m, ok := ParseClock(clockStr)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

// ISOWeekday converts a time.Time to the 0=Monday..6=Sunday index used for
// days_off throughout the system. Go's time.Weekday puts Sunday at 0.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
