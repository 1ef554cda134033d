package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateReport_EmptyTracesDir(t *testing.T) {
	tracesDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "report")

	path, summary, err := GenerateReport(tracesDir, outputDir, "Empty Project")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if path != filepath.Join(outputDir, "index.html") {
		t.Errorf("returned path = %q, want index.html under output dir", path)
	}
	if summary.Total != 0 {
		t.Errorf("summary.Total = %d, want 0", summary.Total)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	checks := []string{
		"Empty Project",
		"No trace archives found",
	}
	for _, check := range checks {
		if !strings.Contains(string(data), check) {
			t.Errorf("report missing %q", check)
		}
	}
}

func TestGenerateReport_CreatesOutputDirParents(t *testing.T) {
	tracesDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "a", "b", "report")

	if _, _, err := GenerateReport(tracesDir, outputDir, "P"); err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "index.html")); err != nil {
		t.Errorf("index.html missing: %v", err)
	}
}

func TestGenerateReport_WritesSummaryJSON(t *testing.T) {
	tracesDir := t.TempDir()
	writeArchive(t, tracesDir, "demo_test-PASS-1700000000000.zip", 100)
	writeArchive(t, tracesDir, "other_test-FAIL-1700000000500.zip", 100)
	outputDir := filepath.Join(t.TempDir(), "report")

	_, summary, err := GenerateReport(tracesDir, outputDir, "P")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if summary.Total != 2 || summary.Passed != 1 || summary.Failed != 1 {
		t.Errorf("returned summary = %+v, want total=2 passed=1 failed=1", summary)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "report.json"))
	if err != nil {
		t.Fatalf("read report.json: %v", err)
	}

	var out struct {
		Summary  Summary `json:"summary"`
		Archives []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"archives"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal report.json: %v", err)
	}

	if out.Summary.Total != 2 || out.Summary.Passed != 1 || out.Summary.Failed != 1 {
		t.Errorf("summary = %+v, want total=2 passed=1 failed=1", out.Summary)
	}
	if len(out.Archives) != 2 || out.Archives[0].Name != "other test" {
		t.Errorf("archives = %+v, want other test first", out.Archives)
	}
}

func TestGenerateReport_Idempotent(t *testing.T) {
	tracesDir := t.TempDir()
	writeArchive(t, tracesDir, "demo_test-PASS-1700000000000.zip", 100)
	outputDir := filepath.Join(t.TempDir(), "report")

	first := generateAndRead(t, tracesDir, outputDir)
	second := generateAndRead(t, tracesDir, outputDir)

	if stripGeneratedAt(first) != stripGeneratedAt(second) {
		t.Error("reports differ beyond the generation timestamp")
	}
}

func generateAndRead(t *testing.T, tracesDir, outputDir string) string {
	t.Helper()
	path, _, err := GenerateReport(tracesDir, outputDir, "P")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	return string(data)
}

// stripGeneratedAt removes the line carrying the generation timestamp.
func stripGeneratedAt(html string) string {
	lines := strings.Split(html, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, "generated-at") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
