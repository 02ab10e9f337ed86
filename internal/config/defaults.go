package config

import (
	_ "embed"
)

//go:embed defaults/wirecross.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:    "input.txt",
		Database: "~/.wirecross/history.db",
		Parallel: true,
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
		Log: LogConfig{
			Level: "info",
		},
		Render: RenderConfig{
			MaxWidth:  200,
			MaxHeight: 100,
			Color:     true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
