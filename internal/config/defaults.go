package config

import (
	"github.com/bnema/scrollguard/internal/domain/entity"
	"github.com/bnema/scrollguard/internal/logging"
)

const (
	envPrefix = "SCROLLGUARD"

	defaultLogLevel = "info"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ScrollLock: ScrollLockConfig{
			MarkerAttribute:   entity.DefaultLockMarkerAttribute,
			ContainerSelector: entity.DefaultScrollContainerSelector,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: logging.FormatConsole,
		},
	}
}
