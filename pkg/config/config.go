// Package config loads the sysup user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable settings.
type Config struct {
	// SkipConfirmation disables the confirmation dialog before running
	// selected actions.
	SkipConfirmation bool `toml:"skip_confirmation"`

	// Shell is the interpreter used to run scripts.
	Shell string `toml:"shell"`

	// LogDir is where per-run logs are written.
	LogDir string `toml:"log_dir"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Shell:  "sh",
		LogDir: filepath.Join(os.TempDir(), "sysup"),
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(dir, "sysup", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if !meta.IsDefined("shell") || cfg.Shell == "" {
		cfg.Shell = "sh"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = Default().LogDir
	}

	return cfg, nil
}
