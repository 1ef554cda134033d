package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/pw-trace-report/pkg/config"
	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
	"github.com/devicelab-dev/pw-trace-report/pkg/report"
)

var reportCommand = &cli.Command{
	Name:  "report",
	Usage: "Generate the HTML report from a directory of trace archives",
	Description: `Scan a directory for Playwright trace archives and write index.html
(plus a machine-readable report.json) to the output directory.

Zero archives is a valid run: the report is generated with empty counts
and the command exits 0.

Examples:
  pw-trace-report report
  pw-trace-report report --traces out/traces --output out/report
  pw-trace-report report --project "Checkout Suite"`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "traces",
			Aliases: []string{"t"},
			Usage:   "Directory scanned for trace archives",
			EnvVars: []string{"PW_TRACE_DIR"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output directory for the report",
			EnvVars: []string{"PW_TRACE_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "project",
			Usage:   "Project display name in the report header",
			EnvVars: []string{"PW_TRACE_PROJECT"},
		},
	},
	Action: runReport,
}

func runReport(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config: %v", err), 1)
	}

	if flag := c.String("traces"); flag != "" {
		cfg.TracesDir = flag
	}
	if flag := c.String("output"); flag != "" {
		cfg.OutputDir = flag
	}
	if flag := c.String("project"); flag != "" {
		cfg.ProjectName = flag
	}

	initLogger(c, cfg.OutputDir)
	defer logger.Close()

	path, summary, err := report.GenerateReport(cfg.TracesDir, cfg.OutputDir, cfg.ProjectName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("generate report: %v", err), 1)
	}

	fmt.Printf("  %s✓ Report written to %s%s\n", color(colorGreen), path, color(colorReset))
	fmt.Printf("  %s%d traces · %s%d passed%s · %s%d failed%s",
		color(colorBold), summary.Total,
		color(colorGreen), summary.Passed, color(colorReset),
		color(colorRed), summary.Failed, color(colorReset))
	if summary.Unknown > 0 {
		fmt.Printf(" · %s%d unknown%s", color(colorDim), summary.Unknown, color(colorReset))
	}
	fmt.Println()

	return nil
}

// resolveConfig loads the workspace config: --config path if given,
// otherwise config.yaml/config.yml in the working directory, otherwise
// defaults. CLI flags are applied on top by the callers.
func resolveConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// initLogger points the file logger at <outputDir>/pw-trace-report.log.
// Logging is best-effort; a failed init leaves logging disabled.
func initLogger(c *cli.Context, outputDir string) {
	os.MkdirAll(outputDir, 0o755)
	if err := logger.Init(filepath.Join(outputDir, "pw-trace-report.log")); err == nil {
		logger.SetVerbose(c.Bool("verbose"))
	}
}
