// Package harness wraps the Playwright SDK with the browser and tracing
// lifecycle boilerplate a traced test run needs: launch browser, start
// tracing, run, stop tracing into a status-tagged archive, tear down.
//
// The harness owns none of the automation semantics. Its one contract with
// the reporting side is the archive naming scheme in pkg/trace.
package harness

import (
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
	"github.com/devicelab-dev/pw-trace-report/pkg/trace"
)

// Session is one traced browser session. Not safe for concurrent use.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	opts    Options
	done    bool
}

// Start launches a Chromium browser with tracing enabled.
// The Playwright driver is installed on first use.
func Start(opts Options) (*Session, error) {
	opts.applyDefaults()

	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   logger.GetWriter(),
		Stderr:   logger.GetWriter(),
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("create context: %w", err)
	}

	if err := context.Tracing().Start(playwright.TracingStartOptions{
		Screenshots: playwright.Bool(true),
		Snapshots:   playwright.Bool(true),
		Sources:     playwright.Bool(true),
	}); err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("start tracing: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("create page: %w", err)
	}
	page.SetDefaultTimeout(opts.TimeoutMs)

	return &Session{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
		opts:    opts,
	}, nil
}

// Page returns the session's page for the caller's automation steps.
func (s *Session) Page() playwright.Page {
	return s.page
}

// Fetch issues an HTTP request through the browser context's API client,
// sharing its cookies and proxy settings.
func (s *Session) Fetch(url string) (playwright.APIResponse, error) {
	return s.context.Request().Get(url)
}

// Finish stops tracing, writes the archive named for testName and the run
// outcome, and tears the session down. Returns the archive path actually on
// disk: the status tag is best-effort, so the untagged path comes back when
// the rename fails.
func (s *Session) Finish(testName string, passed bool) (string, error) {
	if s.done {
		return "", fmt.Errorf("session already finished")
	}
	s.done = true
	defer s.close()

	if err := os.MkdirAll(s.opts.TracesDir, 0o755); err != nil {
		return "", fmt.Errorf("create traces dir: %w", err)
	}

	archivePath := trace.BuildArchivePath(testName, s.opts.TracesDir, time.Now().UnixMilli())
	if err := s.context.Tracing().Stop(archivePath); err != nil {
		return "", fmt.Errorf("stop tracing: %w", err)
	}

	status := trace.StatusFail
	if passed {
		status = trace.StatusPass
	}
	final := trace.TagWithStatus(archivePath, status)
	logger.Info("trace for %q saved to %s", testName, final)
	return final, nil
}

// Close tears the session down without saving a trace archive.
func (s *Session) Close() {
	if s.done {
		return
	}
	s.done = true
	s.close()
}

func (s *Session) close() {
	// Ignore errors, continue cleanup
	_ = s.page.Close()
	_ = s.context.Close()
	_ = s.browser.Close()
	if err := s.pw.Stop(); err != nil {
		logger.Warn("failed to stop playwright: %v", err)
	}
}
