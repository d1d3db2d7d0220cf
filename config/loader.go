package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LocalPath is the config file picked up from the working directory.
const LocalPath = "coolgame.yaml"

// Load reads the configuration.
// Search order: customPath -> ./coolgame.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	data, err := os.ReadFile(LocalPath)
	switch {
	case err == nil:
		return parse(LocalPath, data)
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read config %s: %w", LocalPath, err)
	}

	return parse("embedded default", defaultYAML)
}

func parse(name string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}
