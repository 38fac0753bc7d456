package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the examctl configuration, read from a YAML file with flag
// overrides layered on top by the CLI.
type Config struct {
	ServerURL string `yaml:"server_url"`
	TokenFile string `yaml:"token_file"`
}

// DefaultConfigPath is ~/.config/examctl/config.yaml (per-OS equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "examctl", "config.yaml"), nil
}

// LoadConfig reads the YAML file at path. A missing file is not an error:
// defaults and flags are enough to run.
func LoadConfig(path string) (Config, error) {
	cfg := Config{ServerURL: "http://localhost:8080"}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	return cfg, nil
}
