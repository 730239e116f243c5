// Package config holds the run configuration of the toggle CLI.
//
// Resolution order: Default(), then an optional YAML file, then command-line
// flags; Validate runs last.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full set of run settings.
type Config struct {
	// Workers is the number of machines solved in parallel; 0 means NumCPU.
	Workers int `yaml:"workers"`
	// CacheSize is the per-machine joltage memo capacity.
	CacheSize int `yaml:"cache_size"`
	// MaxRounds bounds the binary-lifting rounds per joltage query.
	MaxRounds int `yaml:"max_rounds"`
	// LogLevel is one of debug, info, warning, error.
	LogLevel string `yaml:"log_level"`
	// MetricsFile, when set, receives the Prometheus text exposition on exit.
	MetricsFile string `yaml:"metrics_file"`
	// ProfileDir, when set, enables CPU profiling into that directory.
	ProfileDir string `yaml:"profile_dir"`
	// Verbose prints one report line per machine.
	Verbose bool `yaml:"verbose"`
}

// Default returns the deterministic defaults.
func Default() Config {
	return Config{
		Workers:   0,
		CacheSize: 4096,
		MaxRounds: 64,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pkgerrors.Wrap(err, "config: read")
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, pkgerrors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, pkgerrors.Wrap(err, "config: decode")
	}
	return cfg, nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return pkgerrors.Wrapf(ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.CacheSize <= 0 {
		return pkgerrors.Wrapf(ErrInvalidConfig, "cache_size %d", c.CacheSize)
	}
	if c.MaxRounds <= 0 {
		return pkgerrors.Wrapf(ErrInvalidConfig, "max_rounds %d", c.MaxRounds)
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "warn", "error":
	default:
		return pkgerrors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	return nil
}
