package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/pw-trace-report/pkg/trace"
)

var tagCommand = &cli.Command{
	Name:      "tag",
	Usage:     "Embed a pass/fail status in a trace archive's filename",
	ArgsUsage: "<archive> <pass|fail>",
	Description: `Rename a trace archive so its filename carries the run outcome.
Re-tagging replaces the existing status. Archives whose names do not match
the naming scheme are left untouched.

Examples:
  pw-trace-report tag target/pw-traces/login-1700000000000.zip pass
  pw-trace-report tag target/pw-traces/login-PASS-1700000000000.zip fail`,
	Action: runTag,
}

func runTag(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: pw-trace-report tag <archive> <pass|fail>", 1)
	}

	path := c.Args().Get(0)
	var status trace.Status
	switch c.Args().Get(1) {
	case "pass":
		status = trace.StatusPass
	case "fail":
		status = trace.StatusFail
	default:
		return cli.Exit(fmt.Sprintf("invalid status %q (want pass or fail)", c.Args().Get(1)), 1)
	}

	newPath := trace.TagWithStatus(path, status)
	if newPath == path {
		fmt.Printf("  %s- %s unchanged%s\n", color(colorDim), path, color(colorReset))
		return nil
	}

	fmt.Printf("  %s✓ %s → %s%s\n", color(colorGreen), path, newPath, color(colorReset))
	return nil
}
