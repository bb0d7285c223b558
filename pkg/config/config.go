// Package config loads client configuration from a YAML file next to the
// binary, with .env / environment variable overrides on top. The backend
// base URL lives here rather than as a compiled-in constant so one build
// can point at any environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	StatePath  string `yaml:"state_path"` // SQLite file holding session state
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns the configuration used when no file or environment
// overrides exist: a local development backend and state next to the
// binary.
func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:8000",
		StatePath:  pathNextToBinary("lexclient.db"),
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// DefaultPath returns where Load looks for the YAML file when the caller
// passes none.
func DefaultPath() string {
	return pathNextToBinary("lexclient.yaml")
}

func pathNextToBinary(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// Load builds the configuration: defaults, then the YAML file at path (or
// DefaultPath when path is empty; a missing file is fine), then .env and
// environment variables. Environment wins so deployments can override a
// checked-in file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Missing .env is the common case outside development.
	_ = godotenv.Load()

	if v := os.Getenv("LEXCLIENT_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("LEXCLIENT_STATE_PATH"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("LEXCLIENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEXCLIENT_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// Save writes the configuration as YAML to path (or DefaultPath when
// empty).
func (c Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
