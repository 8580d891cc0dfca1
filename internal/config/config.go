package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/colliders/internal/core/authoring"
	"github.com/zeusync/colliders/internal/core/observability/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures the collider bake tool.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Bake   BakeConfig   `json:"bake" yaml:"bake"`
	Output OutputConfig `json:"output" yaml:"output"`
	Watch  WatchConfig  `json:"watch" yaml:"watch"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
	// Encoding is "json" or "console".
	Encoding string `json:"encoding" yaml:"encoding"`
}

type BakeConfig struct {
	Workers int `json:"workers" yaml:"workers"`
}

type OutputConfig struct {
	Format string `json:"format" yaml:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Encoding: "console"},
		Bake:   BakeConfig{Workers: runtime.NumCPU()},
		Output: OutputConfig{Format: string(authoring.FormatYAML)},
		Watch:  WatchConfig{Debounce: 100 * time.Millisecond},
	}
}

// LoadYAML reads a config over the defaults and validates it.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the config at path. An empty path yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("%w: log.encoding %q: want json or console", ErrInvalidConfig, c.Log.Encoding)
	}
	if c.Bake.Workers < 1 {
		return fmt.Errorf("%w: bake.workers must be at least 1, got %d", ErrInvalidConfig, c.Bake.Workers)
	}
	if _, err := authoring.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %v", ErrInvalidConfig, err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LogOptions converts the log section for log.New.
func (c *Config) LogOptions() log.Options {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Options{Level: level, Encoding: c.Log.Encoding}
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() authoring.Format {
	format, _ := authoring.ParseFormat(c.Output.Format)
	return format
}
