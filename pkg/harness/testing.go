package harness

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// Run is the go test entry point for a traced browser test: it starts a
// session, hands the page to fn, and on cleanup stops tracing into an
// archive tagged from t.Failed(). Failing to start the session fails the
// test; failing to save the archive only logs, the test outcome stands.
func Run(t *testing.T, opts Options, fn func(page playwright.Page)) {
	t.Helper()

	session, err := Start(opts)
	if err != nil {
		t.Fatalf("start browser session: %v", err)
	}

	t.Cleanup(func() {
		path, err := session.Finish(t.Name(), !t.Failed())
		if err != nil {
			t.Logf("failed to save trace: %v", err)
			return
		}
		t.Logf("saved trace to %s", path)
	})

	fn(session.Page())
}
