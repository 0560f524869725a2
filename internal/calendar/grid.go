package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot in the month grid. Leading cells before day 1 are
// blank fillers so the first day lands on its weekday column.
type Cell struct {
	Day     int    // 1-based day of month, 0 for a blank cell
	DateKey string // YYYY-MM-DD, empty for a blank cell
	Blank   bool
}

// DateKey formats the zero-padded YYYY-MM-DD key for a day. This is the
// only lookup key into the client mirror; callers must not build keys by
// any other formatting.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthKey formats the zero-padded YYYY-MM key used by month queries.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Grid returns the ordered cells for a month under a Sunday week start:
// one blank cell per weekday preceding day 1, then one cell per day.
// Pure and side-effect free; re-invoked on every navigation.
func Grid(year int, month time.Month) []Cell {
	firstWeekday := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	days := DaysIn(year, month)

	cells := make([]Cell, 0, firstWeekday+days)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Day:     day,
			DateKey: DateKey(year, month, day),
		})
	}
	return cells
}
