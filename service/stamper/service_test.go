package stamper

import (
	"os"
	"path/filepath"
	"testing"
)

const envVar = "PYWHEELER_DEV_VERSION"

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func devEnv(val string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == envVar {
			return val, true
		}
		return "", false
	}
}

func TestComputeFromPythonModule(t *testing.T) {
	source := writeSource(t, "__init__.py", "\"\"\"fairpkg.\"\"\"\n\n__version__ = \"0.8.1\"\n")

	svc := NewServiceWithEnv(source, envVar, noEnv)
	version, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if version != "0.8.1" {
		t.Fatalf("unexpected version: %q", version)
	}
}

func TestComputeFromPlainFile(t *testing.T) {
	source := writeSource(t, "VERSION", "1.4.0\n")

	svc := NewServiceWithEnv(source, envVar, noEnv)
	version, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if version != "1.4.0" {
		t.Fatalf("unexpected version: %q", version)
	}
}

func TestComputeWithDevSuffix(t *testing.T) {
	source := writeSource(t, "__init__.py", "__version__ = '0.8.1'\n")

	svc := NewServiceWithEnv(source, envVar, devEnv("42"))
	version, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if version != "0.8.1.dev42" {
		t.Fatalf("unexpected version: %q", version)
	}
}

func TestComputeInvalidDevValue(t *testing.T) {
	source := writeSource(t, "VERSION", "1.0.0")

	svc := NewServiceWithEnv(source, envVar, devEnv("not-a-number"))
	if _, err := svc.Compute(); err == nil {
		t.Fatal("expected error for non-numeric dev version")
	}
}

func TestComputeMissingVersionAttr(t *testing.T) {
	source := writeSource(t, "__init__.py", "x = 1\n")

	svc := NewServiceWithEnv(source, envVar, noEnv)
	if _, err := svc.Compute(); err == nil {
		t.Fatal("expected error for missing __version__")
	}
}

func TestStampWritesFile(t *testing.T) {
	source := writeSource(t, "VERSION", "2.0.0")
	out := filepath.Join(t.TempDir(), "nested", "version.txt")

	svc := NewServiceWithEnv(source, envVar, devEnv("7"))
	version, err := svc.Stamp(out)
	if err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}
	if version != "2.0.0.dev7" {
		t.Fatalf("unexpected version: %q", version)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read version file: %v", err)
	}
	if string(data) != "2.0.0.dev7\n" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestStampOverwrites(t *testing.T) {
	source := writeSource(t, "VERSION", "2.0.0")
	out := filepath.Join(t.TempDir(), "version.txt")
	if err := os.WriteFile(out, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	svc := NewServiceWithEnv(source, envVar, noEnv)
	if _, err := svc.Stamp(out); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}
	data, _ := os.ReadFile(out)
	if string(data) != "2.0.0\n" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}
