// Package installer installs the local packages in editable mode so the
// stamping and build steps see the current source tree, uncommitted changes
// included.
package installer

import (
	"context"
	"fmt"

	"github.com/pywheeler/pywheeler/service/runner"
)

type service struct {
	runner   runner.Service
	python   string
	packages []string
}

// Service installs local packages in editable mode.
type Service interface {
	Install(ctx context.Context) ([]runner.Result, error)
	Commands() [][]string
}

// NewService creates a new installer service.
func NewService(run runner.Service, python string, packages []string) Service {
	return &service{runner: run, python: python, packages: packages}
}

// Install runs an editable install for each package directory in order. The
// first failure aborts; results of completed installs are still returned.
func (s *service) Install(ctx context.Context) ([]runner.Result, error) {
	results := make([]runner.Result, 0, len(s.packages))
	for _, pkg := range s.packages {
		res, err := s.runner.Run(ctx, "", s.python, "-m", "pip", "install", "-e", pkg)
		results = append(results, res)
		if err != nil {
			return results, fmt.Errorf("editable install of %s failed: %w", pkg, err)
		}
	}
	return results, nil
}

// Commands returns the install command lines without executing them.
func (s *service) Commands() [][]string {
	cmds := make([][]string, 0, len(s.packages))
	for _, pkg := range s.packages {
		cmds = append(cmds, []string{s.python, "-m", "pip", "install", "-e", pkg})
	}
	return cmds
}
