// Package config provides configuration management for scrollguard with Viper integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the complete configuration for scrollguard.
type Config struct {
	ScrollLock ScrollLockConfig `mapstructure:"scroll_lock" yaml:"scroll_lock" toml:"scroll_lock" json:"scroll_lock"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// ScrollLockConfig controls how the lock is recorded in the page.
type ScrollLockConfig struct {
	// MarkerAttribute is the boolean attribute set on the document root while scrolling is disabled.
	MarkerAttribute string `mapstructure:"marker_attribute" yaml:"marker_attribute" toml:"marker_attribute" json:"marker_attribute" jsonschema:"default=data-scroll-lock"`
	// ContainerSelector matches the element pinned in place while scrolling is disabled.
	ContainerSelector string `mapstructure:"container_selector" yaml:"container_selector" toml:"container_selector" json:"container_selector" jsonschema:"default=body"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager. Config files named
// config.{toml,yaml,json} are searched in paths, or in the XDG config
// directory and the working directory when no path is given.
func NewManager(paths ...string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")

	if len(paths) == 0 {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		paths = []string{configDir, "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// SCROLLGUARD_SCROLL_LOCK_MARKER_ATTRIBUTE, SCROLLGUARD_LOGGING_LEVEL, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v}, nil
}

// Load loads the configuration from defaults, file and environment variables.
// A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		if file := m.viper.ConfigFileUsed(); file != "" {
			return fmt.Errorf("%s: %w", file, err)
		}
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
// Defaults are returned before Load succeeds.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("scroll_lock.marker_attribute", defaults.ScrollLock.MarkerAttribute)
	m.viper.SetDefault("scroll_lock.container_selector", defaults.ScrollLock.ContainerSelector)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func normalizeConfig(config *Config) {
	config.ScrollLock.MarkerAttribute = strings.TrimSpace(config.ScrollLock.MarkerAttribute)
	config.ScrollLock.ContainerSelector = strings.TrimSpace(config.ScrollLock.ContainerSelector)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}
