package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ljchuang/sweepbook/internal/calendar"
)

const cellWidth = 10

// MonthCmd renders one month of bookings as a calendar grid.
type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to render (YYYY-MM), defaults to the current month."`
}

func (c *MonthCmd) Run(runCtx *Context) error {
	monthKey := c.Month
	if monthKey == "" {
		now := runCtx.Now()
		monthKey = calendar.MonthKey(now.Year(), now.Month())
	}
	monthKey, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}

	if err := runCtx.Mirror.Reload(context.Background(), monthKey); err != nil {
		return err
	}

	year, month, err := splitMonthKey(monthKey)
	if err != nil {
		return err
	}

	renderMonth(runCtx, year, month)
	fmt.Fprintf(runCtx.Out, "\nMonth total: $%.0f\n", runCtx.Mirror.MonthTotal())
	return nil
}

func splitMonthKey(monthKey string) (int, time.Month, error) {
	parts := strings.SplitN(monthKey, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", monthKey, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", monthKey)
	}
	return year, time.Month(m), nil
}

// renderMonth draws the grid week by week. Each day cell shows the day
// number and, when the mirror has jobs for it, the booked count and the
// day total.
func renderMonth(runCtx *Context, year int, month time.Month) {
	out := runCtx.Output

	fmt.Fprintf(runCtx.Out, "%s %d\n", month.String(), year)

	var header strings.Builder
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header.WriteString(runewidth.FillRight(wd, cellWidth))
	}
	fmt.Fprintln(runCtx.Out, out.String(header.String()).Bold().String())

	cells := calendar.Grid(year, month)
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		fmt.Fprintln(runCtx.Out, renderWeek(runCtx, cells[start:end]))
	}
}

func renderWeek(runCtx *Context, week []calendar.Cell) string {
	out := runCtx.Output

	var line strings.Builder
	for _, cell := range week {
		if cell.Blank {
			line.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}

		stats := runCtx.Mirror.Stats(cell.DateKey)
		text := strconv.Itoa(cell.Day)
		if stats.Jobs > 0 {
			text = fmt.Sprintf("%d·%dj $%.0f", cell.Day, stats.Jobs, stats.Total)
		}
		padded := runewidth.FillRight(runewidth.Truncate(text, cellWidth-1, "…"), cellWidth)
		if stats.Jobs > 0 {
			padded = out.String(padded).Foreground(out.Color("2")).String()
		}
		line.WriteString(padded)
	}
	return line.String()
}
