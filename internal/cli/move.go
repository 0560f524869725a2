package cli

import (
	"context"
	"fmt"
)

// MoveCmd reschedules a job: the calendar drag, minus the calendar.
type MoveCmd struct {
	ID   string `arg:"" help:"Job id."`
	From string `required:"" help:"Current date (YYYY-MM-DD)."`
	To   string `required:"" help:"Destination date (YYYY-MM-DD)."`
}

func (c *MoveCmd) Run(runCtx *Context) error {
	fromDate, err := parseDateKey(c.From)
	if err != nil {
		return err
	}
	toDate, err := parseDateKey(c.To)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := runCtx.Mirror.Reload(ctx, monthOf(fromDate)); err != nil {
		return err
	}

	if err := runCtx.Mirror.Move(ctx, c.ID, fromDate, toDate); err != nil {
		return err
	}

	if fromDate == toDate {
		fmt.Fprintf(runCtx.Out, "Job %s already on %s\n", c.ID, toDate)
		return nil
	}

	fmt.Fprintf(runCtx.Out, "Moved job %s from %s to %s\n", c.ID, fromDate, toDate)
	return nil
}
