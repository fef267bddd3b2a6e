package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// localConfigPath is the project-relative config location checked after the user directory.
const localConfigPath = "configs/flappy.yaml"

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. A broken customPath is an error; a broken file in one of
// the implicit locations is logged and skipped. logger may be nil.
func LoadFlappy(customPath string, logger *log.Logger) (FlappyConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return FlappyConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("flappy.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseFlappy(data)
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		if err := cfg.Validate(); err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		logger.Error("embedded config does not parse, using built-in values", "error", err)
		return DefaultFlappyConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("embedded config is invalid, using built-in values", "error", err)
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// parseFlappy decodes YAML over the hardcoded defaults.
func parseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
