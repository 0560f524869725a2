package calendar

import (
	"fmt"
	"math"
	"strings"
)

const (
	PeriodAM = "AM"
	PeriodPM = "PM"

	minutesPerDay = 24 * 60
)

// ClockTime is a 12-hour wall-clock time.
type ClockTime struct {
	Hour   int    // 1-12
	Minute int    // 0-59
	Period string // PeriodAM or PeriodPM
}

// MinutesSinceMidnight resolves the 12-hour value into 0-1439.
func (t ClockTime) MinutesSinceMidnight() int {
	hour := t.Hour % 12
	if strings.EqualFold(t.Period, PeriodPM) {
		hour += 12
	}
	return hour*60 + t.Minute
}

// String renders the 24-hour HH:MM form.
func (t ClockTime) String() string {
	m := t.MinutesSinceMidnight()
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Elapsed returns the hours between start and end, rounded to one
// decimal. A negative difference is taken to mean the span crosses
// midnight and gets a full day added; an end time that is genuinely
// earlier the same day is indistinguishable from that and is not
// detected.
func Elapsed(start, end ClockTime) float64 {
	diff := end.MinutesSinceMidnight() - start.MinutesSinceMidnight()
	if diff < 0 {
		diff += minutesPerDay
	}
	return math.Round(float64(diff)/60*10) / 10
}

// SlotLabel renders the computed time_slot range for a clock-time
// booking, e.g. "09:00～11:00".
func SlotLabel(start, end ClockTime) string {
	return start.String() + "～" + end.String()
}
