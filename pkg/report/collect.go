// Package report turns a directory of trace archives into a single static
// HTML report plus a machine-readable JSON summary.
//
// The report is rebuilt from scratch on every invocation: archives are
// discovered by a directory walk, their filenames parsed back into metadata,
// and the result rendered in one pass. Source archives are never modified.
package report

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
	"github.com/devicelab-dev/pw-trace-report/pkg/trace"
)

// CollectArtifacts recursively scans dir for trace archives and returns their
// parsed metadata sorted most-recent-first, entries without a timestamp last.
// Per-file problems (unreadable entries, non-archives) are skipped, never an
// error; a missing directory yields an empty result.
func CollectArtifacts(dir string) []trace.Artifact {
	var artifacts []trace.Artifact

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip it, keep walking.
			logger.Debug("skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".zip") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Debug("skipping %s: %v", path, err)
			return nil
		}

		artifact := trace.ParseArchiveName(d.Name())
		artifact.SizeBytes = info.Size()
		artifacts = append(artifacts, artifact)
		return nil
	})
	if err != nil {
		logger.Warn("scan %s: %v", dir, err)
	}

	// Most recent first; undated entries sort last, ties keep encounter order.
	sort.SliceStable(artifacts, func(i, j int) bool {
		a, b := artifacts[i].CreatedAtMillis, artifacts[j].CreatedAtMillis
		if a == 0 || b == 0 {
			return b == 0 && a != 0
		}
		return a > b
	})

	return artifacts
}
