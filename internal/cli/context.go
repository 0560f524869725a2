package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"

	"github.com/ljchuang/sweepbook/internal/client"
)

// Context carries the shared state every command runs against.
type Context struct {
	Out    io.Writer
	Output *termenv.Output
	Mirror *client.Mirror
	Logger *slog.Logger
	Now    func() time.Time
}
