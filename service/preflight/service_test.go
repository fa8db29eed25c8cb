package preflight

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pywheeler/pywheeler/service/runner"
)

type fakeRunner struct {
	mu     sync.Mutex
	calls  [][]string
	broken string
}

func (f *fakeRunner) Run(_ context.Context, _ string, command string, args ...string) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{command}, args...))
	f.mu.Unlock()
	joined := strings.Join(args, " ")
	if f.broken != "" && strings.Contains(joined, f.broken) {
		return runner.Result{ExitCode: 1}, &runner.ExitError{Command: command, Args: args, ExitCode: 1}
	}
	return runner.Result{Output: "Python 3.12.1\nextra"}, nil
}

func TestCheckReportsAllProbes(t *testing.T) {
	fake := &fakeRunner{}
	svc := NewService(fake, "python3")

	probes, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(probes) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(probes))
	}
	for _, p := range probes {
		if !p.Available {
			t.Fatalf("expected probe %s available: %+v", p.Name, p)
		}
		if p.Version != "Python 3.12.1" {
			t.Fatalf("expected first output line as version, got %q", p.Version)
		}
	}
}

func TestCheckMissingToolIsReportedNotFatal(t *testing.T) {
	fake := &fakeRunner{broken: "-m build"}
	svc := NewService(fake, "python3")

	probes, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	byName := map[string]Probe{}
	for _, p := range probes {
		byName[p.Name] = p
	}
	if byName["build"].Available {
		t.Fatalf("expected build probe unavailable: %+v", byName["build"])
	}
	if byName["build"].Detail == "" {
		t.Fatal("expected detail for unavailable tool")
	}
	if !byName["python"].Available || !byName["pip"].Available {
		t.Fatalf("other probes should stay available: %+v", probes)
	}
}
