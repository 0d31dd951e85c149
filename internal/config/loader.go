package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a config file.
// Search order: customPath -> ~/.careers/configs/<name> -> ./configs/<name> -> embedded default -> fallback
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	// Start from the defaults so a partial file only overrides what it names.
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadAviation loads the aviation game configuration.
func LoadAviation(customPath string) (AviationConfig, error) {
	return load("aviation.yaml", customPath, defaultAviationYAML, DefaultAviationConfig)
}

// LoadChef loads the chef game configuration.
func LoadChef(customPath string) (ChefConfig, error) {
	return load("chef.yaml", customPath, defaultChefYAML, DefaultChefConfig)
}

// LoadBartender loads the bartender game configuration.
func LoadBartender(customPath string) (BartenderConfig, error) {
	return load("bartender.yaml", customPath, defaultBartenderYAML, DefaultBartenderConfig)
}

// LoadCareers loads the carousel catalogue.
func LoadCareers(customPath string) (CareersConfig, error) {
	return load("careers.yaml", customPath, defaultCareersYAML, DefaultCareersConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".careers", "configs", filename)
}
