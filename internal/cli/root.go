package cli

// CLI is the sweepctl command tree.
type CLI struct {
	Config  string `help:"Path to configuration file." type:"path"`
	Server  string `help:"API base URL, overrides config." placeholder:"URL"`
	Verbose bool   `help:"Enable debug logging."`

	Month MonthCmd `cmd:"" help:"Render the calendar for a month."`
	Day   DayCmd   `cmd:"" help:"Show the jobs of one day."`
	Add   AddCmd   `cmd:"" help:"Book a new cleaning job."`
	Move  MoveCmd  `cmd:"" help:"Reschedule a job to another date."`
	Rm    RmCmd    `cmd:"" help:"Delete a job."`
}

// NewCLI returns an empty command tree for kong to populate.
func NewCLI() *CLI {
	return &CLI{}
}
