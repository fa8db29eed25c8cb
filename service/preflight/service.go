// Package preflight probes the Python toolchain the pipeline depends on. The
// probes are independent of each other and of the pipeline, so they run
// concurrently.
package preflight

import (
	"context"
	"strings"

	"github.com/pywheeler/pywheeler/service/runner"
	"golang.org/x/sync/errgroup"
)

// Probe is the status of one required tool.
type Probe struct {
	Name      string `json:"name"`
	Command   string `json:"command"`
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

type service struct {
	runner runner.Service
	python string
}

// Service runs toolchain preflight checks.
type Service interface {
	Check(ctx context.Context) ([]Probe, error)
}

// NewService creates a new preflight service.
func NewService(run runner.Service, python string) Service {
	return &service{runner: run, python: python}
}

// Check probes the interpreter, pip and the build module concurrently and
// reports one Probe per tool. Missing tools are reported, not fatal.
func (s *service) Check(ctx context.Context) ([]Probe, error) {
	specs := []struct {
		name string
		args []string
	}{
		{name: "python", args: []string{"--version"}},
		{name: "pip", args: []string{"-m", "pip", "--version"}},
		{name: "build", args: []string{"-m", "build", "--version"}},
	}

	probes := make([]Probe, len(specs))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			probe := Probe{Name: spec.name, Command: s.python + " " + strings.Join(spec.args, " ")}
			res, err := s.runner.Run(groupCtx, "", s.python, spec.args...)
			if err != nil {
				probe.Detail = err.Error()
			} else {
				probe.Available = true
				probe.Version = firstLine(res.Output)
			}
			probes[i] = probe
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return probes, nil
}

func firstLine(out string) string {
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		return strings.TrimSpace(out[:i])
	}
	return strings.TrimSpace(out)
}
