package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexclient.yaml")
	body := "api_base_url: https://staging.example.com\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://staging.example.com" {
		t.Errorf("APIBaseURL = %q, want file value", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want file value", cfg.LogLevel)
	}

	t.Setenv("LEXCLIENT_API_URL", "https://prod.example.com")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load with env: unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://prod.example.com" {
		t.Errorf("APIBaseURL = %q, environment should win over the file", cfg.APIBaseURL)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api_base_url: [unclosed"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load should reject malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Config{
		APIBaseURL: "https://example.com",
		StatePath:  "/tmp/state.db",
		LogLevel:   "warn",
		LogFormat:  "json",
	}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
