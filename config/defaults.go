package config

import _ "embed"

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "COOLGAME",
		},
		Resources: "resources",
		LogLevel:  "info",
	}
}
