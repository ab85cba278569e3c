package calendar

import (
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var hmPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// IsDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsTimeOfDay reports whether s is a zero-padded HH:MM time.
func IsTimeOfDay(s string) bool {
	if !hmPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// Today is the current date in the server's local calendar.
func Today() string {
	return time.Now().Format(DateLayout)
}
