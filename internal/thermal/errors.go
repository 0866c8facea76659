package thermal

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrInvalidConfig indicates a run configuration that fails validation.
	ErrInvalidConfig = errors.New("thermal: invalid configuration")

	// ErrUnstableField indicates a NaN or Inf temperature during stepping.
	ErrUnstableField = errors.New("thermal: field diverged (NaN or Inf)")
)

// ConfigError reports which configuration field failed validation and
// why. It unwraps to [ErrInvalidConfig].
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("thermal: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
