// Package config handles run configuration for gs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matsen/gramschmidt/internal/generator"
)

// Config holds the parameters of a single run.
type Config struct {
	LowerBound  int     `yaml:"lower_bound"`       // Smallest integer a vector component may take
	UpperBound  int     `yaml:"upper_bound"`       // Largest integer a vector component may take
	Seed        *uint64 `yaml:"seed,omitempty"`    // Random seed; nil draws a fresh one per run
	MaxAttempts int     `yaml:"max_attempts"`      // Retry limit for drawing an independent basis
	Decimals    int     `yaml:"decimals"`          // Decimal places shown in output
	Output      string  `yaml:"output,omitempty"`  // Path for the rendered figure; empty uses a temp file
	Browser     string  `yaml:"browser,omitempty"` // Command that opens the figure; empty or "system" uses the platform default
}

// Defaults for a run with no configuration file, environment or flags.
const (
	DefaultLowerBound  = -10
	DefaultUpperBound  = 10
	DefaultMaxAttempts = 1000
	DefaultDecimals    = 3

	// MaxDecimals is the largest supported Decimals value.
	MaxDecimals = 12

	// MaxBound is the largest absolute value allowed for either bound.
	MaxBound = generator.MaxBound
)

// Environment variables that override file values.
const (
	EnvLowerBound  = "GS_LOWER_BOUND"
	EnvUpperBound  = "GS_UPPER_BOUND"
	EnvSeed        = "GS_SEED"
	EnvMaxAttempts = "GS_MAX_ATTEMPTS"
	EnvDecimals    = "GS_DECIMALS"
	EnvOutput      = "GS_OUTPUT"
	EnvBrowser     = "GS_BROWSER"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LowerBound:  DefaultLowerBound,
		UpperBound:  DefaultUpperBound,
		MaxAttempts: DefaultMaxAttempts,
		Decimals:    DefaultDecimals,
	}
}

// Validate checks that the configuration describes a runnable job.
func (c *Config) Validate() error {
	if c.LowerBound < -MaxBound || c.UpperBound > MaxBound {
		return fmt.Errorf("%w: bounds [%d, %d] must lie within [%d, %d]", ErrInvalidConfig, c.LowerBound, c.UpperBound, -MaxBound, MaxBound)
	}
	if c.LowerBound > c.UpperBound {
		return fmt.Errorf("%w: lower_bound %d is greater than upper_bound %d", ErrInvalidConfig, c.LowerBound, c.UpperBound)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.Decimals < 0 || c.Decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals must be between 0 and %d, got %d", ErrInvalidConfig, MaxDecimals, c.Decimals)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
// Pass os.LookupEnv for the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvLowerBound, &c.LowerBound},
		{EnvUpperBound, &c.UpperBound},
		{EnvMaxAttempts, &c.MaxAttempts},
		{EnvDecimals, &c.Decimals},
	}
	for _, e := range ints {
		val, ok := lookup(e.key)
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, e.key, val)
		}
		*e.dst = n
	}

	if val, ok := lookup(EnvSeed); ok && val != "" {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidConfig, EnvSeed, val)
		}
		c.Seed = &seed
	}

	if val, ok := lookup(EnvOutput); ok && val != "" {
		c.Output = ExpandPath(val)
	}

	if val, ok := lookup(EnvBrowser); ok && val != "" {
		c.Browser = val
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
