package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devicelab-dev/pw-trace-report/pkg/logger"
	"github.com/devicelab-dev/pw-trace-report/pkg/trace"
	"github.com/devicelab-dev/pw-trace-report/pkg/viewer"
)

// summaryFile is the machine-readable companion to index.html.
type summaryFile struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	ProjectName string         `json:"projectName"`
	TracesDir   string         `json:"tracesDir"`
	Summary     Summary        `json:"summary"`
	Archives    []archiveEntry `json:"archives"`
}

type archiveEntry struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	CreatedAtMillis int64  `json:"createdAtMillis,omitempty"`
	SizeBytes       int64  `json:"sizeBytes"`
	Filename        string `json:"filename"`
}

// GenerateReport scans tracesDir and writes a static HTML report plus a JSON
// summary into outputDir. Returns the path of the written index.html and the
// aggregated counts from the single scan, so callers don't rescan.
//
// Missing viewer assets only cost the offline "view" links; every other
// per-archive problem is skipped. Failing to create outputDir or to write
// the report is fatal.
func GenerateReport(tracesDir, outputDir, projectName string) (string, Summary, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	copyViewerAssets(outputDir)

	artifacts := CollectArtifacts(tracesDir)
	summary := Summarize(artifacts)
	generatedAt := time.Now()

	html, err := RenderReport(artifacts, projectName, tracesDir, generatedAt)
	if err != nil {
		return "", Summary{}, fmt.Errorf("render report: %w", err)
	}

	indexPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(html), 0o644); err != nil {
		return "", Summary{}, fmt.Errorf("write report: %w", err)
	}

	writeSummaryJSON(outputDir, tracesDir, projectName, artifacts, summary, generatedAt)

	logger.Info("report written to %s (%d archives)", indexPath, summary.Total)
	return indexPath, summary, nil
}

// copyViewerAssets copies the offline trace viewer into <outputDir>/trace/.
// Best-effort: without it the report still works, only the view links break.
func copyViewerAssets(outputDir string) {
	src, err := viewer.Locate()
	if err != nil {
		logger.Warn("offline viewer disabled: %v", err)
		return
	}

	dst := filepath.Join(outputDir, "trace")
	if err := viewer.CopyTree(src, dst); err != nil {
		logger.Warn("failed to copy viewer assets from %s: %v", src, err)
	}
}

// writeSummaryJSON writes report.json next to index.html for tooling that
// prefers structured output. Best-effort: the HTML report is the contract.
func writeSummaryJSON(outputDir, tracesDir, projectName string, artifacts []trace.Artifact, summary Summary, generatedAt time.Time) {
	out := summaryFile{
		GeneratedAt: generatedAt,
		ProjectName: projectName,
		TracesDir:   tracesDir,
		Summary:     summary,
		Archives:    make([]archiveEntry, 0, len(artifacts)),
	}
	for _, a := range artifacts {
		out.Archives = append(out.Archives, archiveEntry{
			Name:            a.DisplayName(),
			Status:          string(a.Status),
			CreatedAtMillis: a.CreatedAtMillis,
			SizeBytes:       a.SizeBytes,
			Filename:        a.Filename,
		})
	}

	if err := atomicWriteJSON(filepath.Join(outputDir, "report.json"), out); err != nil {
		logger.Warn("failed to write report.json: %v", err)
	}
}
