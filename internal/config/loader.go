package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "monkeytrain.yaml"

// SourceEmbedded and SourceBuiltin name the non-file configuration sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.monkeytrain/configs/monkeytrain.yaml ->
// ./configs/monkeytrain.yaml -> embedded default -> Default().
// Files are decoded over Default(), so partial files only override what they set.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monkeytrain", "configs", filename)
}
