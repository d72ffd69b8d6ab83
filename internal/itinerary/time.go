package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// ParseMinutes reads an H:MM, HH:MM or HH:MM:SS time of day and returns the
// minutes since midnight. Seconds and anything after the minutes are ignored.
func ParseMinutes(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
