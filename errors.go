package textpath

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textpath package.
var (
	// ErrUnknownDocument is returned when a document name is not configured.
	ErrUnknownDocument = errors.New("textpath: unknown document")

	// ErrUnknownBuiltin is returned for a builtin: font source that does not
	// name a bundled font.
	ErrUnknownBuiltin = errors.New("textpath: unknown builtin font")

	// ErrInvalidConfig is wrapped by every configuration validation error.
	ErrInvalidConfig = errors.New("textpath: invalid config")
)

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	// Field is the offending key, e.g. "document[2].halign".
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
