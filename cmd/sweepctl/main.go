package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/ljchuang/sweepbook/internal/cli"
	"github.com/ljchuang/sweepbook/internal/client"
	"github.com/ljchuang/sweepbook/internal/config"
	"github.com/ljchuang/sweepbook/shared/logger"
)

const (
	defaultBaseURL        = "http://localhost:8080"
	defaultRequestTimeout = 15 * time.Second
)

func main() {
	_ = godotenv.Load()

	root := cli.NewCLI()
	parser, err := kong.New(root,
		kong.Name("sweepctl"),
		kong.Description("Cleaning-job booking calendar."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := loadConfig(root.Config)

	baseURL := defaultBaseURL
	if cfg.Client.BaseURL != "" {
		baseURL = cfg.Client.BaseURL
	}
	if root.Server != "" {
		baseURL = root.Server
	}

	requestTimeout := defaultRequestTimeout
	if cfg.Client.RequestTimeout > 0 {
		requestTimeout = cfg.Client.RequestTimeout
	}

	appLogger := initLogger(root.Verbose)

	mirror := client.NewMirror(client.NewHTTPClient(baseURL, requestTimeout), appLogger)
	mirror.SetMoveTimeout(cfg.Client.MoveTimeout)

	runCtx := &cli.Context{
		Out:    os.Stdout,
		Output: termenv.NewOutput(os.Stdout),
		Mirror: mirror,
		Logger: appLogger,
		Now:    time.Now,
	}

	if err := kctx.Run(runCtx); err != nil {
		fmt.Fprintf(os.Stderr, "sweepctl: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file. A missing file is fine,
// the defaults cover local use.
func loadConfig(path string) *config.Config {
	if path == "" {
		path = os.Getenv("SWEEPCTL_CONFIG_PATH")
	}
	if path == "" {
		path = "configs/sweepctl/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

func initLogger(verbose bool) *slog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return logger.NewDefault().Logger
	}
	return appLogger.Logger
}
