package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
projectName: Checkout Suite
tracesDir: out/traces
outputDir: out/report
port: 9090
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ProjectName != "Checkout Suite" {
		t.Errorf("expected projectName 'Checkout Suite', got %q", cfg.ProjectName)
	}
	if cfg.TracesDir != "out/traces" {
		t.Errorf("expected tracesDir out/traces, got %q", cfg.TracesDir)
	}
	if cfg.OutputDir != "out/report" {
		t.Errorf("expected outputDir out/report, got %q", cfg.OutputDir)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `projectName: [invalid yaml`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDir_PrefersYaml(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("projectName: from-yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("projectName: from-yml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectName != "from-yaml" {
		t.Errorf("expected config.yaml to win, got %q", cfg.ProjectName)
	}
}

func TestLoadFromDir_FallsBackToYml(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("projectName: from-yml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectName != "from-yml" {
		t.Errorf("expected config.yml fallback, got %q", cfg.ProjectName)
	}
}

func TestLoadFromDir_NoConfigFile(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectName != "" || cfg.Port != 0 {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.ProjectName != DefaultProjectName {
		t.Errorf("projectName default = %q, want %q", cfg.ProjectName, DefaultProjectName)
	}
	if cfg.TracesDir != DefaultTracesDir {
		t.Errorf("tracesDir default = %q, want %q", cfg.TracesDir, DefaultTracesDir)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("outputDir default = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("port default = %d, want %d", cfg.Port, DefaultPort)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{ProjectName: "Mine", Port: 3000}
	cfg.ApplyDefaults()

	if cfg.ProjectName != "Mine" {
		t.Errorf("projectName = %q, want explicit value kept", cfg.ProjectName)
	}
	if cfg.Port != 3000 {
		t.Errorf("port = %d, want explicit value kept", cfg.Port)
	}
}
