package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the embedded default config in Load's source result.
const SourceEmbedded = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.rockdodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
//
// Files only need to name the values they change; everything else keeps its
// default. An explicit customPath must exist, parse and validate; the implicit
// locations are skipped when they do not.
func Load(customPath string) (DodgeConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DodgeConfig{}, customPath, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DodgeConfig{}, customPath, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath("dodge.yaml"),
		filepath.Join("configs", "dodge.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultDodgeYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultDodgeConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockdodge", "configs", filename)
}
