package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MergeConfig holds merge defaults loaded from fieldmerge.yml.
type MergeConfig struct {
	// DefaultCountryCode seeds the primary phone country code when no
	// record contributes one. Empty falls back to "US".
	DefaultCountryCode string `yaml:"defaultCountryCode,omitempty"`
}

// Load attempts to read fieldmerge.yml or fieldmerge.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*MergeConfig, error) {
	for _, name := range []string{"fieldmerge.yml", "fieldmerge.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg MergeConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &MergeConfig{}, nil
}
