package models

import "time"

// DateFormat is the layout for all persisted calendar dates.
// ISO dates compare lexicographically in the same order as
// chronologically, which the range queries rely on.
const DateFormat = "2006-01-02"

// Today returns the current calendar date in DateFormat.
func Today() string {
	return time.Now().Format(DateFormat)
}

// ValidDate reports whether s is a well-formed DateFormat date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
