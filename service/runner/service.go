// Package runner executes the external build tools the pipeline drives. Each
// command runs to completion before the next step starts; there is no retry
// and no parallelism.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Minute

// NewService creates a new subprocess runner.
func NewService() Service {
	return &service{timeout: defaultTimeout}
}

// NewServiceWithTimeout creates a runner with a custom per-command timeout.
func NewServiceWithTimeout(timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &service{timeout: timeout}
}

// Run executes command in dir, inheriting the process environment, and
// returns combined stdout/stderr. A non-zero exit code is returned as an
// *ExitError carrying the code.
func (s *service) Run(ctx context.Context, dir string, command string, args ...string) (Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(runCtx, command, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	output, err := cmd.CombinedOutput()

	result := Result{
		Command:  command,
		Args:     args,
		Dir:      dir,
		Output:   strings.TrimSpace(string(output)),
		Duration: time.Since(start),
	}

	if runCtx.Err() == context.DeadlineExceeded {
		result.ExitCode = -1
		return result, fmt.Errorf("command %s timed out after %s", command, s.timeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{
				Command:  command,
				Args:     args,
				ExitCode: result.ExitCode,
				Output:   result.Output,
			}
		}
		result.ExitCode = -1
		return result, fmt.Errorf("failed to start %s: %w", command, err)
	}

	return result, nil
}
