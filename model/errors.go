package model

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an invalid flag or config value. It is always
// raised before any side effect takes place.
type ConfigurationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// EnvironmentConflictError reports a dev-version environment variable that was
// already set before the pipeline started. A stale value would contaminate the
// stamped version, so the run is refused.
type EnvironmentConflictError struct {
	Variable string
	Value    string
}

func (e *EnvironmentConflictError) Error() string {
	return fmt.Sprintf("environment variable %s is already set to %q; unset it before running the pipeline", e.Variable, e.Value)
}
