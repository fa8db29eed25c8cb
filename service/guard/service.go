// Package guard validates the target type and asserts the dev-version
// environment variable is absent before the pipeline starts.
package guard

import (
	"os"

	"github.com/pywheeler/pywheeler/model"
)

// NewService creates a new environment guard service.
func NewService() Service {
	return &service{lookupEnv: os.LookupEnv}
}

// NewServiceWithEnv creates a guard backed by a custom environment lookup.
func NewServiceWithEnv(lookupEnv func(string) (string, bool)) Service {
	return &service{lookupEnv: lookupEnv}
}

// Validate canonicalizes the target type and checks that envVar is unset. A
// value left over from a previous run would leak into the stamped version, so
// the pipeline is refused before any side effect.
func (s *service) Validate(target string, envVar string) (model.TargetType, error) {
	parsed, err := model.ParseTargetType(target)
	if err != nil {
		return "", err
	}
	if val, ok := s.lookupEnv(envVar); ok {
		return "", &model.EnvironmentConflictError{Variable: envVar, Value: val}
	}
	return parsed, nil
}
