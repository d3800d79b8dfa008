package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigVersion is written into new config files.
const ConfigVersion = "1"

// DefaultOperator is recorded in the activity log when no operator is configured.
const DefaultOperator = "desk"

// OperatorEnv overrides the configured operator.
const OperatorEnv = "DESK_OPERATOR"

// Config represents the flat desk configuration
type Config struct {
	Version    string `json:"version"`
	Operator   string `json:"operator,omitempty"`    // name recorded in the activity log
	SeedFile   string `json:"seed_file,omitempty"`   // YAML seed; empty uses the built-in seed
	ActivityDB string `json:"activity_db,omitempty"` // sqlite path; empty or ":memory:" keeps it in memory
	NoColor    bool   `json:"no_color,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:  ConfigVersion,
		Operator: DefaultOperator,
	}
}

// Dir returns the .desk directory inside dir.
func Dir(dir string) string {
	return filepath.Join(dir, ".desk")
}

// LoadConfig reads .desk/config.json from the specified directory.
// Relative seed_file and activity_db paths are resolved against dir.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(Dir(dir), "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.SeedFile = resolve(dir, cfg.SeedFile)
	if cfg.ActivityDB != ":memory:" {
		cfg.ActivityDB = resolve(dir, cfg.ActivityDB)
	}
	return cfg, nil
}

// Resolve loads the config from dir, falling back to DefaultConfig when no
// config file exists, and applies environment overrides.
func Resolve(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	if op := os.Getenv(OperatorEnv); op != "" {
		cfg.Operator = op
	}
	if cfg.Operator == "" {
		cfg.Operator = DefaultOperator
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	deskDir := Dir(dir)
	if err := os.MkdirAll(deskDir, 0755); err != nil {
		return fmt.Errorf("failed to create .desk dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(deskDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
