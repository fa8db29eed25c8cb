// Package builder produces the sdist and wheel artifacts for each package
// directory. Build failures are fatal; the exit code of the failing tool is
// surfaced unchanged.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pywheeler/pywheeler/service/runner"
)

type service struct {
	runner   runner.Service
	python   string
	distDir  string
	packages []string
}

// Service builds distribution artifacts.
type Service interface {
	Build(ctx context.Context) ([]string, error)
	Commands() [][]string
}

// NewService creates a new builder service.
func NewService(run runner.Service, python, distDir string, packages []string) Service {
	return &service{runner: run, python: python, distDir: distDir, packages: packages}
}

// Build runs the standard sdist+wheel build in every package directory and
// returns the artifact paths found in each dist directory.
func (s *service) Build(ctx context.Context) ([]string, error) {
	var artifacts []string
	for _, pkg := range s.packages {
		_, err := s.runner.Run(ctx, pkg, s.python, "-m", "build", "--sdist", "--wheel", "--outdir", s.distDir)
		if err != nil {
			return artifacts, fmt.Errorf("build of %s failed: %w", pkg, err)
		}
		found, err := s.listArtifacts(pkg)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, found...)
	}
	return artifacts, nil
}

// Commands returns the build command lines without executing them.
func (s *service) Commands() [][]string {
	cmds := make([][]string, 0, len(s.packages))
	for range s.packages {
		cmds = append(cmds, []string{s.python, "-m", "build", "--sdist", "--wheel", "--outdir", s.distDir})
	}
	return cmds
}

func (s *service) listArtifacts(pkg string) ([]string, error) {
	dir := filepath.Join(pkg, s.distDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list artifacts in %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".whl", ".gz", ".zip":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
