// Package config loads the etlfield configuration file.
//
// Example:
//
//	log:
//	  level: debug
//	merge:
//	  purpose_policy: FIRST
//	  time_format: YYYY-MM
//	  workers: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etltime"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/merge"
)

// Config is the top-level configuration.
type Config struct {
	Log   LogConfig    `yaml:"log"`
	Merge merge.Config `yaml:"merge"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Merge: merge.DefaultConfig(),
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if err := c.Merge.Validate(); err != nil {
		return err
	}

	if c.Merge.TimeFormat != "" {
		if _, err := etltime.Layout(c.Merge.TimeFormat); err != nil {
			return fmt.Errorf("merge.time_format: %w", err)
		}
	}

	return nil
}
