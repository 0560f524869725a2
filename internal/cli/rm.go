package cli

import (
	"context"
	"fmt"
)

// RmCmd deletes a booking.
type RmCmd struct {
	ID   string `arg:"" help:"Job id."`
	Date string `required:"" help:"Date the job sits on (YYYY-MM-DD)."`
}

func (c *RmCmd) Run(runCtx *Context) error {
	date, err := parseDateKey(c.Date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := runCtx.Mirror.Reload(ctx, monthOf(date)); err != nil {
		return err
	}

	if err := runCtx.Mirror.Delete(ctx, c.ID, date); err != nil {
		return err
	}

	fmt.Fprintf(runCtx.Out, "Removed job %s from %s\n", c.ID, date)
	return nil
}
