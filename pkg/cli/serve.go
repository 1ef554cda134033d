package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
	"github.com/devicelab-dev/pw-trace-report/pkg/server"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve a generated report directory over HTTP",
	Description: `Start a local static-file server for a generated report.
"/" maps to index.html; only GET and HEAD are accepted.

Examples:
  pw-trace-report serve
  pw-trace-report serve --root out/report --port 3000`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Usage:   "Report directory to serve",
			EnvVars: []string{"PW_TRACE_OUTPUT"},
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port to listen on",
			EnvVars: []string{"PW_TRACE_PORT"},
		},
	},
	Action: runServe,
}

func runServe(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config: %v", err), 1)
	}

	root := cfg.OutputDir
	if flag := c.String("root"); flag != "" {
		root = flag
	}
	port := cfg.Port
	if flag := c.Int("port"); flag != 0 {
		port = flag
	}

	if _, err := os.Stat(root); err != nil {
		return cli.Exit(fmt.Sprintf("report directory %s not found (run \"pw-trace-report report\" first)", root), 1)
	}

	initLogger(c, root)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  %s▶ Serving %s on http://localhost:%d%s\n", color(colorCyan), root, port, color(colorReset))

	srv := &server.Server{Root: root, Port: port}
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return cli.Exit(fmt.Sprintf("serve: %v", err), 1)
	}
	return nil
}
