// Package config provides YAML-based configuration loading for wirecross.
package config

import (
	"errors"
	"fmt"
)

// Config contains all wirecross settings.
type Config struct {
	Input    string        `yaml:"input"`
	Database string        `yaml:"database"`
	Parallel bool          `yaml:"parallel"`
	History  HistoryConfig `yaml:"history"`
	Log      LogConfig     `yaml:"log"`
	Render   RenderConfig  `yaml:"render"`
}

// HistoryConfig controls run recording.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"` // Rows shown by `wirecross history` when --limit is not set
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RenderConfig defines limits for ASCII plots.
type RenderConfig struct {
	MaxWidth  int  `yaml:"max_width"`  // 0 = unlimited
	MaxHeight int  `yaml:"max_height"` // 0 = unlimited
	Color     bool `yaml:"color"`      // Only applied when stdout is a terminal
}

// Validate checks the config for values the CLI cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit must be >= 0, got %d", c.History.Limit))
	}
	if c.Render.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("render.max_width must be >= 0, got %d", c.Render.MaxWidth))
	}
	if c.Render.MaxHeight < 0 {
		errs = append(errs, fmt.Errorf("render.max_height must be >= 0, got %d", c.Render.MaxHeight))
	}
	if c.History.Enabled && c.Database == "" {
		errs = append(errs, errors.New("database must be set when history is enabled"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
