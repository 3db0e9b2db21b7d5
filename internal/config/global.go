package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "gs"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// DefaultPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/gs/config.yml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the YAML configuration at path on top of the defaults.
// Returns the defaults (not an error) if the file doesn't exist.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Output != "" {
		cfg.Output = ExpandPath(cfg.Output)
	}

	return cfg, nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// HelpfulConfigMessage describes where configuration is read from.
func HelpfulConfigMessage() string {
	configPath := DefaultPath()
	return fmt.Sprintf(`Configuration is read from %s (if present),
then from %s, %s, %s, %s, %s, %s and %s in the environment or ./.env,
then from command-line flags.

Example:
  mkdir -p %s
  printf 'lower_bound: -5\nupper_bound: 5\nseed: 42\n' > %s`,
		configPath,
		EnvLowerBound, EnvUpperBound, EnvSeed, EnvMaxAttempts, EnvDecimals, EnvOutput, EnvBrowser,
		filepath.Dir(configPath),
		configPath)
}
