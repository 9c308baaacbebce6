package itinerary

import (
	"regexp"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "Mon, 02 Jan 2006"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// FormatDate renders a YYYY-MM-DD date for display. Anything else renders
// as the empty string.
func FormatDate(s string) string {
	if !datePattern.MatchString(s) {
		return ""
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}
