package config

import (
	"path/filepath"
	"testing"
)

func TestGetHome_EnvVar(t *testing.T) {
	ResetHome()
	t.Setenv("PW_TRACE_HOME", "/custom/path")

	got := GetHome()
	if got != "/custom/path" {
		t.Errorf("GetHome() = %q, want %q", got, "/custom/path")
	}
}

func TestGetHome_FallbackToCwd(t *testing.T) {
	ResetHome()
	t.Setenv("PW_TRACE_HOME", "")

	// When not in a bin/ directory and no env var, should fall back to cwd
	// (unless the test binary happens to be in a bin/ directory)
	if got := GetHome(); got == "" {
		t.Error("GetHome() returned empty string")
	}
}

func TestGetHome_Cached(t *testing.T) {
	ResetHome()
	t.Setenv("PW_TRACE_HOME", "/first")

	first := GetHome()

	// Change env — should NOT affect cached value
	t.Setenv("PW_TRACE_HOME", "/second")
	second := GetHome()

	if first != second {
		t.Errorf("GetHome() not cached: first=%q, second=%q", first, second)
	}
}

func TestGetViewerDir(t *testing.T) {
	ResetHome()
	t.Setenv("PW_TRACE_HOME", "/home/pwtr")

	want := filepath.Join("/home/pwtr", "viewer")
	if got := GetViewerDir(); got != want {
		t.Errorf("GetViewerDir() = %q, want %q", got, want)
	}
}
