package flag

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlagState(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"pywheeler"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func TestGetParsedFlagsAllOptions(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--target", "Test",
		"--dev-version", "42",
		"--version-file", "out.txt",
		"--packages", "pkg-a, pkg-b",
		"--readme-in", "README.md",
		"--readme-out", "README.pypi.md",
		"--config-path", "/tmp/pywheeler.yaml",
		"--output", "json",
		"--store",
		"--db-path", "/tmp/history.db",
		"--dry-run",
		"--verbose",
		"--log-file", "/tmp/pywheeler.log",
	})
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Target != "Test" || flags.DevVersion != 42 || flags.VersionFile != "out.txt" {
		t.Fatalf("unexpected release flags: %+v", flags)
	}
	if len(flags.Packages) != 2 || flags.Packages[0] != "pkg-a" || flags.Packages[1] != "pkg-b" {
		t.Fatalf("unexpected packages: %v", flags.Packages)
	}
	if flags.ReadmeIn != "README.md" || flags.ReadmeOut != "README.pypi.md" {
		t.Fatalf("unexpected readme flags: %+v", flags)
	}
	if flags.ConfigPath != "/tmp/pywheeler.yaml" || flags.Output != "json" {
		t.Fatalf("unexpected config/output flags: %+v", flags)
	}
	if !flags.Store || flags.DBPath != "/tmp/history.db" {
		t.Fatalf("unexpected storage flags: %+v", flags)
	}
	if !flags.DryRun || !flags.Verbose || flags.LogFile != "/tmp/pywheeler.log" {
		t.Fatalf("unexpected run/logging flags: %+v", flags)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	cleanup := resetFlagState(t, nil)
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Output != "table" {
		t.Fatalf("unexpected default output: %s", flags.Output)
	}
	if flags.Target != "" || flags.DevVersion != 0 || flags.VersionFile != "" {
		t.Fatalf("unexpected release defaults: %+v", flags)
	}
	if flags.Store || flags.DryRun || flags.Verbose || flags.Version {
		t.Fatalf("unexpected boolean defaults: %+v", flags)
	}
	if flags.Packages != nil {
		t.Fatalf("expected nil packages, got %v", flags.Packages)
	}
}
