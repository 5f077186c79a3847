package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets the override variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvInput, EnvOutput, EnvLogLevel, EnvReportUnmatched} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdir switches the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	baseDir := t.TempDir()
	chdir(t, t.TempDir())

	cfg, err := Load(baseDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != filepath.Join(baseDir, "stations.json") {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.Output != filepath.Join(baseDir, "stations_with_indexes.json") {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Indent != 2 {
		t.Errorf("Indent = %d, want 2", cfg.Indent)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ReportUnmatched {
		t.Error("ReportUnmatched should default to false")
	}
}

func TestLoad_FileInBaseDir(t *testing.T) {
	clearEnv(t)
	baseDir := t.TempDir()
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(baseDir, FileName), `
input: data/in.json
output: /tmp/out.json
indent: 4
logLevel: DEBUG
reportUnmatched: true
`)

	cfg, err := Load(baseDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != filepath.Join(baseDir, "data", "in.json") {
		t.Errorf("relative input should resolve against the file, got %q", cfg.Input)
	}
	if cfg.Output != "/tmp/out.json" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Indent)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.ReportUnmatched {
		t.Error("ReportUnmatched should be true")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	baseDir := t.TempDir()
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(baseDir, FileName), "reportUnmatched: true\n")

	cfg, err := Load(baseDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 2 || cfg.Input != filepath.Join(baseDir, DefaultInputName) {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")
	writeFile(t, path, "")

	cfg, err := Load(dir, path)
	if err != nil {
		t.Fatalf("empty config should load: %v", err)
	}
	if cfg != Defaults(dir) {
		t.Errorf("empty config should equal defaults, got %+v", cfg)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(dir, filepath.Join(dir, "nope.yml"))
	if err == nil {
		t.Fatal("explicit missing config should return error")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	writeFile(t, path, "invalid: yaml: content: [[[")

	if _, err := Load(dir, path); err == nil {
		t.Error("Loading invalid YAML should return error")
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"indent too large", "indent: 9\n"},
		{"indent zero", "indent: 0\n"},
		{"unknown log level", "logLevel: verbose\n"},
		{"empty input", "input: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			path := filepath.Join(dir, FileName)
			writeFile(t, path, tt.content)

			_, err := Load(dir, path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_OutputMayEqualInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, "input: same.json\noutput: same.json\n")

	cfg, err := Load(dir, path)
	if err != nil {
		t.Fatalf("in-place conversion should be allowed: %v", err)
	}
	if cfg.Input != cfg.Output {
		t.Errorf("Input %q != Output %q", cfg.Input, cfg.Output)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, "input: from-file.json\nlogLevel: info\n")

	t.Setenv(EnvInput, "/env/in.json")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvReportUnmatched, "true")

	cfg, err := Load(dir, path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input != "/env/in.json" {
		t.Errorf("Input = %q, want env value", cfg.Input)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if !cfg.ReportUnmatched {
		t.Error("ReportUnmatched should come from env")
	}
}

func TestLoad_InvalidBoolEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv(EnvReportUnmatched, "sometimes")

	if _, err := Load(t.TempDir(), ""); err == nil {
		t.Error("invalid boolean should return error")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	baseDir := t.TempDir()
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(baseDir, EnvFileName), EnvOutput+"=/dotenv/out.json\n")

	cfg, err := Load(baseDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "/dotenv/out.json" {
		t.Errorf("Output = %q, want value from .env", cfg.Output)
	}
}
