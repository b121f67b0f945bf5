package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/scrollguard/internal/logging"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	marker := config.ScrollLock.MarkerAttribute
	if marker == "" {
		validationErrors = append(validationErrors, "scroll_lock.marker_attribute cannot be empty")
	} else if strings.ContainsAny(marker, " \t\n\"'>/=") {
		validationErrors = append(validationErrors, fmt.Sprintf("scroll_lock.marker_attribute is not a valid attribute name (got: %s)", marker))
	}

	selector := config.ScrollLock.ContainerSelector
	if selector == "" {
		validationErrors = append(validationErrors, "scroll_lock.container_selector cannot be empty")
	} else if !isSupportedContainerSelector(selector) {
		validationErrors = append(validationErrors, fmt.Sprintf("scroll_lock.container_selector must be one of: body, html, :root, #id (got: %s)", selector))
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(validationErrors, "; "))
	}
	return nil
}

// isSupportedContainerSelector reports whether selector is one of the forms
// the page runtime resolves: body, html, :root or a single #id.
func isSupportedContainerSelector(selector string) bool {
	switch selector {
	case "body", "html", ":root":
		return true
	}
	id, ok := strings.CutPrefix(selector, "#")
	return ok && id != "" && !strings.ContainsAny(id, " \t\n#.,>+~[]:()*\"'")
}
