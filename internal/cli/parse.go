package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ljchuang/sweepbook/internal/calendar"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)$`)
)

// parseDateKey validates a YYYY-MM-DD argument. The server's month query
// is a string prefix match, so an unpadded date would silently vanish
// from every month view; reject it here instead.
func parseDateKey(value string) (string, error) {
	if !datePattern.MatchString(value) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return value, nil
}

// parseMonthKey validates a YYYY-MM argument.
func parseMonthKey(value string) (string, error) {
	if !monthPattern.MatchString(value) {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return value, nil
}

// monthOf extracts the YYYY-MM prefix of a date key.
func monthOf(dateKey string) string {
	if len(dateKey) < 7 {
		return dateKey
	}
	return dateKey[:7]
}

// parseClock parses a 12-hour time like "09:30AM" or "7:00pm".
func parseClock(value string) (calendar.ClockTime, error) {
	m := clockPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if m == nil {
		return calendar.ClockTime{}, fmt.Errorf("invalid time %q, expected HH:MMAM or HH:MMPM", value)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return calendar.ClockTime{}, fmt.Errorf("invalid time %q, hour must be 1-12 and minute 0-59", value)
	}

	return calendar.ClockTime{Hour: hour, Minute: minute, Period: m[3]}, nil
}
