package cli

import (
	"context"
	"fmt"

	"github.com/ljchuang/sweepbook/internal/api/dto"
	"github.com/ljchuang/sweepbook/internal/calendar"
)

// AddCmd books a new job. The time slot comes either from a picked
// label (--slot) or from a clock range (--from/--to), in which case the
// hours are computed from the span.
type AddCmd struct {
	Date    string  `arg:"" help:"Booking date (YYYY-MM-DD)."`
	Client  string  `required:"" help:"Client name."`
	Rate    float64 `required:"" help:"Hourly rate."`
	Hours   float64 `help:"Worked hours; computed from --from/--to when omitted."`
	Slot    string  `help:"Picked time slot label, e.g. 09:00-11:00."`
	From    string  `help:"Start time (HH:MMAM/PM), alternative to --slot."`
	To      string  `help:"End time (HH:MMAM/PM), requires --from."`
	Address string  `help:"Job address."`
}

func (c *AddCmd) Run(runCtx *Context) error {
	dateKey, err := parseDateKey(c.Date)
	if err != nil {
		return err
	}

	hours := c.Hours
	slot := c.Slot

	if c.From != "" || c.To != "" {
		if c.From == "" || c.To == "" {
			return fmt.Errorf("--from and --to must be given together")
		}
		if slot != "" {
			return fmt.Errorf("--slot cannot be combined with --from/--to")
		}

		start, err := parseClock(c.From)
		if err != nil {
			return err
		}
		end, err := parseClock(c.To)
		if err != nil {
			return err
		}

		slot = calendar.SlotLabel(start, end)
		if hours == 0 {
			hours = calendar.Elapsed(start, end)
		}
	}

	if hours == 0 {
		return fmt.Errorf("either --hours or a --from/--to range is required")
	}

	job, err := runCtx.Mirror.Create(context.Background(), dto.CreateJobRequest{
		Date:       dateKey,
		ClientName: c.Client,
		Hours:      hours,
		HourlyRate: c.Rate,
		TimeSlot:   slot,
		Address:    c.Address,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(runCtx.Out, "Booked %s on %s: %.1fh × $%.0f = $%.0f (id %s)\n",
		job.ClientName, job.Date, job.Hours, job.HourlyRate, job.Total, job.ID)
	return nil
}
