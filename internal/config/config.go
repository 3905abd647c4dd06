package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// WatchSettings controls the theme directory watcher.
type WatchSettings struct {
	Enabled    bool `yaml:"enabled"`     // Reload themes when their files change
	DebounceMs int  `yaml:"debounce_ms"` // Quiet period before a burst of events is applied
}

// PreviewSettings controls the preview surfaces (TUI and GUI).
type PreviewSettings struct {
	ShowUnknown bool   `yaml:"show_unknown"` // Surface unrecognized property keys in previews
	Selector    string `yaml:"selector"`     // Initial selector filter glob, e.g. "QPush*"
}

// LogSettings controls the process log output.
type LogSettings struct {
	Debug bool   `yaml:"debug"` // Emit debug-level messages
	File  string `yaml:"file"`  // Mirror log output to this file
	JSON  bool   `yaml:"json"`  // Emit structured JSON instead of text
}

// Config represents the application configuration structure.
// It selects the startup theme, extra theme directories, and the
// watcher and preview behavior.
type Config struct {
	Theme     string          `yaml:"theme"`      // Theme activated at startup
	ThemeDirs []string        `yaml:"theme_dirs"` // Extra directories searched for *.qss files
	Watch     WatchSettings   `yaml:"watch"`
	Preview   PreviewSettings `yaml:"preview"`
	Log       LogSettings     `yaml:"log"`
}

// LoadConfig loads configuration from the default location
// (~/.config/themed/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "themed", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Theme != "" {
		cfg.Theme = tempCfg.Theme
	}
	if len(tempCfg.ThemeDirs) > 0 {
		cfg.ThemeDirs = tempCfg.ThemeDirs
	}

	cfg.Watch.Enabled = tempCfg.Watch.Enabled
	if tempCfg.Watch.DebounceMs > 0 {
		cfg.Watch.DebounceMs = tempCfg.Watch.DebounceMs
	}

	cfg.Preview.ShowUnknown = tempCfg.Preview.ShowUnknown
	if tempCfg.Preview.Selector != "" {
		cfg.Preview.Selector = tempCfg.Preview.Selector
	}

	cfg.Log.Debug = tempCfg.Log.Debug
	cfg.Log.JSON = tempCfg.Log.JSON
	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Theme = "dark" // Matches the bundled default
	cfg.ThemeDirs = []string{}

	cfg.Watch.Enabled = false
	cfg.Watch.DebounceMs = 250

	cfg.Preview.ShowUnknown = false
	cfg.Preview.Selector = ""

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	if strings.ContainsRune(c.Theme, os.PathSeparator) {
		return fmt.Errorf("invalid theme name: %s", c.Theme)
	}

	for i, dir := range c.ThemeDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("theme directory %d: path cannot be empty", i)
		}
	}

	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch debounce must be >= 0 ms")
	}
	if c.Watch.Enabled && c.Watch.DebounceMs < 1 {
		return fmt.Errorf("watch debounce must be >= 1 ms when watching is enabled")
	}

	// The selector filter must compile as a glob pattern
	if c.Preview.Selector != "" {
		if _, err := glob.Compile(c.Preview.Selector); err != nil {
			return fmt.Errorf("invalid preview selector %q: %w", c.Preview.Selector, err)
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := &Config{}
	cfg.Theme = "light"
	cfg.ThemeDirs = []string{}
	cfg.Watch.Enabled = true
	cfg.Watch.DebounceMs = 50
	cfg.Preview.ShowUnknown = true
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
