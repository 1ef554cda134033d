// Package viewer locates and copies the Playwright trace-viewer static
// assets so reports can open archives in a locally hosted, offline viewer.
package viewer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/devicelab-dev/pw-trace-report/pkg/config"
)

const envViewer = "PW_TRACE_VIEWER"

// Locate finds a directory containing the trace-viewer static assets.
//
// Resolution order:
//  1. $PW_TRACE_VIEWER environment variable
//  2. <home>/viewer (bundled with the tool)
//  3. The newest Playwright driver installation in the user cache
//     (<cache>/ms-playwright-go/<version>/package/lib/vite/traceViewer)
//
// Returns an error when no candidate exists; callers treat that as a
// warning, not a failure.
func Locate() (string, error) {
	if env := os.Getenv(envViewer); env != "" {
		if isDir(env) {
			return env, nil
		}
		return "", fmt.Errorf("$%s points to %s which is not a directory", envViewer, env)
	}

	if dir := config.GetViewerDir(); isDir(dir) {
		return dir, nil
	}

	if dir := locateDriverViewer(); dir != "" {
		return dir, nil
	}

	return "", fmt.Errorf("trace viewer assets not found (set $%s or bundle them under %s)",
		envViewer, config.GetViewerDir())
}

// locateDriverViewer searches the Playwright driver cache for viewer assets.
func locateDriverViewer() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}

	matches, err := filepath.Glob(filepath.Join(cacheDir, "ms-playwright-go", "*", "package", "lib", "vite", "traceViewer"))
	if err != nil || len(matches) == 0 {
		return ""
	}

	// Newest driver version wins.
	sort.Strings(matches)
	for i := len(matches) - 1; i >= 0; i-- {
		if isDir(matches[i]) {
			return matches[i]
		}
	}
	return ""
}

// CopyTree recursively copies the directory tree at src into dst.
// dst and missing parents are created.
func CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //#nosec G304 -- path comes from a directory walk
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) //#nosec G304 -- destination under the report dir
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
