// Package cli provides the command-line interface for pw-trace-report.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Usage:   "Path to workspace config.yaml",
		EnvVars: []string{"PW_TRACE_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"PW_TRACE_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "pw-trace-report",
		Usage:   "Aggregate Playwright trace archives into a static HTML report",
		Version: Version,
		Description: `pw-trace-report scans a directory of Playwright trace archives,
parses the pass/fail status and timestamp embedded in each filename,
and renders a self-contained HTML dashboard.

Examples:
  pw-trace-report report
  pw-trace-report report --traces target/pw-traces --project "Checkout Suite"
  pw-trace-report serve --port 8080
  pw-trace-report tag target/pw-traces/login-1700000000000.zip fail`,
		Flags: GlobalFlags,
		Before: func(c *cli.Context) error {
			if c.Bool("no-ansi") {
				colorsEnabled = false
			}
			return nil
		},
		Commands: []*cli.Command{
			reportCommand,
			serveCommand,
			tagCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
