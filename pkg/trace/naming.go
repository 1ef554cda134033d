package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
)

var (
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	underscoreRun = regexp.MustCompile(`_+`)

	// Untagged: <slug>-<13-digit-epoch>.zip
	untaggedName = regexp.MustCompile(`^(.+)-(\d{13})\.zip$`)
	// Tagged: <slug>-PASS|FAIL-<13-digit-epoch>.zip
	taggedName = regexp.MustCompile(`^(.+)-(PASS|FAIL)-(\d{13})\.zip$`)
)

// DeriveSlug converts a human-readable test name into a filesystem-safe
// identifier. Every character outside [A-Za-z0-9_-] becomes an underscore,
// and runs of underscores collapse to one.
func DeriveSlug(name string) string {
	slug := unsafeChars.ReplaceAllString(name, "_")
	return underscoreRun.ReplaceAllString(slug, "_")
}

// BuildArchivePath composes the untagged archive path for a test run.
// nowMillis is the wall-clock time in epoch milliseconds; the caller samples
// the clock so the function stays deterministic.
func BuildArchivePath(testName, dir string, nowMillis int64) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%d.zip", DeriveSlug(testName), nowMillis))
}

// TagWithStatus renames an archive so its filename carries the run outcome.
// An untagged name gains a status segment; an already-tagged name has its
// status segment replaced (re-tagging overwrites, it never stacks tags).
// Names matching neither grammar are returned unchanged.
//
// Tagging is best-effort: rename failures are logged and the original path
// is returned. Callers must re-derive status from whatever name ends up on
// disk rather than assume the rename happened.
func TagWithStatus(path string, status Status) string {
	tag := status.Tag()
	if tag == "" {
		return path
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	var newBase string
	if m := taggedName.FindStringSubmatch(base); m != nil {
		newBase = fmt.Sprintf("%s-%s-%s.zip", m[1], tag, m[3])
	} else if m := untaggedName.FindStringSubmatch(base); m != nil {
		newBase = fmt.Sprintf("%s-%s-%s.zip", m[1], tag, m[2])
	} else {
		return path
	}

	if newBase == base {
		return path
	}

	newPath := filepath.Join(dir, newBase)

	// os.Rename replaces an existing destination atomically on POSIX;
	// Windows needs the destination removed first.
	if runtime.GOOS == "windows" {
		os.Remove(newPath)
	}
	if err := os.Rename(path, newPath); err != nil {
		logger.Warn("failed to tag archive %s as %s: %v", base, tag, err)
		return path
	}

	return newPath
}
