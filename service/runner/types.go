package runner

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Result captures the outcome of one external command.
type Result struct {
	Command  string
	Args     []string
	Dir      string
	Output   string
	ExitCode int
	Duration time.Duration
}

// ExitError reports a command that finished with a non-zero exit code. The
// pipeline surfaces the code unchanged to the invoking shell.
type ExitError struct {
	Command  string
	Args     []string
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command+" "+strings.Join(e.Args, " "), e.ExitCode)
}

type service struct {
	timeout time.Duration
}

// Service executes external commands synchronously.
type Service interface {
	Run(ctx context.Context, dir string, command string, args ...string) (Result, error)
}
