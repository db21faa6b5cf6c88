package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the wordfall configuration.
// Search order: customPath -> ~/.wordfall/configs/wordfall.{yaml,toml} ->
// ./configs/wordfall.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so partial files only override what they set.
func Load(customPath string) (WordfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultWordfallConfig()
	if err := yaml.Unmarshal(defaultWordfallYAML, &cfg); err != nil {
		return DefaultWordfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads one config file, choosing the decoder by extension.
func loadFile(path string) (WordfallConfig, error) {
	cfg := DefaultWordfallConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "wordfall.yaml"),
			filepath.Join(dir, "wordfall.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "wordfall.yaml"),
		filepath.Join("configs", "wordfall.toml"),
	)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordfall", "configs")
}
