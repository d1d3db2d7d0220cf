// Package config loads window and runtime settings from YAML.
package config

import "fmt"

// Config holds settings that may vary per run. Movement and laser speeds are
// compile-time constants in package component and are not configurable.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Resources string       `yaml:"resources"`
	LogLevel  string       `yaml:"log_level"`
	// Watch reloads the player sprite when it changes on disk.
	Watch bool `yaml:"watch"`
}

// WindowConfig defines the window and logical screen.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
