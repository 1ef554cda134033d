package viewer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocate_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PW_TRACE_VIEWER", dir)

	got, err := Locate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Errorf("Locate() = %q, want %q", got, dir)
	}
}

func TestLocate_EnvPointsNowhere(t *testing.T) {
	t.Setenv("PW_TRACE_VIEWER", filepath.Join(t.TempDir(), "missing"))

	if _, err := Locate(); err == nil {
		t.Error("expected error when $PW_TRACE_VIEWER is not a directory")
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "trace")

	// Nested source tree
	if err := os.MkdirAll(filepath.Join(src, "assets", "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"index.html":           "<html></html>",
		"assets/app.js":        "console.log(1)",
		"assets/css/style.css": "body{}",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(dst, name))
		if err != nil {
			t.Errorf("copied file %s missing: %v", name, err)
			continue
		}
		if string(data) != content {
			t.Errorf("copied file %s = %q, want %q", name, data, content)
		}
	}
}

func TestCopyTree_MissingSource(t *testing.T) {
	err := CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	if err == nil {
		t.Error("expected error for missing source directory")
	}
}
