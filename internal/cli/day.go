package cli

import (
	"context"
	"fmt"
)

// DayCmd prints the detail view for one date.
type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *DayCmd) Run(runCtx *Context) error {
	dateKey, err := parseDateKey(c.Date)
	if err != nil {
		return err
	}

	if err := runCtx.Mirror.Reload(context.Background(), monthOf(dateKey)); err != nil {
		return err
	}

	jobs := runCtx.Mirror.Jobs(dateKey)
	if len(jobs) == 0 {
		fmt.Fprintf(runCtx.Out, "No jobs on %s\n", dateKey)
		return nil
	}

	out := runCtx.Output
	fmt.Fprintln(runCtx.Out, out.String(dateKey).Bold().String())
	for _, job := range jobs {
		slot := job.TimeSlot
		if slot == "" {
			slot = "-"
		}
		fmt.Fprintf(runCtx.Out, "  %-18s  %-14s  %.1fh × $%.0f = $%.0f  [%s]\n",
			job.ClientName, slot, job.Hours, job.HourlyRate, job.Total, job.ID)
		if job.Address != "" {
			fmt.Fprintf(runCtx.Out, "    %s\n", job.Address)
		}
	}

	stats := runCtx.Mirror.Stats(dateKey)
	fmt.Fprintf(runCtx.Out, "Total: %.1fh, $%.0f\n", stats.Hours, stats.Total)
	return nil
}
