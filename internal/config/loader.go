package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. INKCLOCK_CLOCK_ROTATION.
const EnvPrefix = "INKCLOCK"

// DefaultPath returns $XDG_CONFIG_HOME/inkclock/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "inkclock", "config.yaml")
}

// Load reads the file at path over the defaults, then applies environment
// overrides. With an empty path the default location is tried and a missing
// file is not an error. It returns the file actually read, if any.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	used, err := loadFile(path, cfg)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		used = ""
	case err != nil:
		return nil, "", err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, "", fmt.Errorf("environment: %w", err)
	}
	return cfg, used, nil
}

func loadFile(path string, cfg *Config) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return "", err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return path, nil
}

// Save writes cfg as YAML, creating parent directories. An existing file is
// only replaced when overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
