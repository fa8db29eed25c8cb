package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pywheeler/pywheeler/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pywheeler.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileWithDefaults(t *testing.T) {
	path := writeConfig(t, `
packages: ["core", "contrib/widget"]
readme:
  input: docs/README.md
  repo_url: https://github.com/example/fairpkg
version:
  source: core/__init__.py
`)

	svc := NewService()
	cfg, err := svc.Load(path, model.Flags{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Packages) != 2 || cfg.Packages[0] != "core" {
		t.Fatalf("unexpected packages: %v", cfg.Packages)
	}
	if cfg.Readme.Input != "docs/README.md" || cfg.Readme.Output != "docs/README.md" {
		t.Fatalf("expected in-place readme default, got %+v", cfg.Readme)
	}
	if cfg.Readme.Ref != "main" {
		t.Fatalf("unexpected ref default: %s", cfg.Readme.Ref)
	}
	if cfg.Version.EnvVar != DefaultEnvVar {
		t.Fatalf("unexpected env var default: %s", cfg.Version.EnvVar)
	}
	if cfg.Build.Python != "python3" || cfg.Build.DistDir != "dist" {
		t.Fatalf("unexpected build defaults: %+v", cfg.Build)
	}
}

func TestLoadFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
packages: ["core"]
readme:
  input: README.md
version:
  source: core/__init__.py
`)

	svc := NewService()
	cfg, err := svc.Load(path, model.Flags{
		Packages:  []string{"other"},
		ReadmeIn:  "OTHER.md",
		ReadmeOut: "OTHER.pypi.md",
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Packages) != 1 || cfg.Packages[0] != "other" {
		t.Fatalf("flag packages should win: %v", cfg.Packages)
	}
	if cfg.Readme.Input != "OTHER.md" || cfg.Readme.Output != "OTHER.pypi.md" {
		t.Fatalf("flag readme paths should win: %+v", cfg.Readme)
	}
}

func TestLoadVersionSourceDefault(t *testing.T) {
	path := writeConfig(t, `packages: ["core"]`)

	svc := NewService()
	cfg, err := svc.Load(path, model.Flags{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Version.Source != filepath.Join("core", "__init__.py") {
		t.Fatalf("unexpected version source default: %s", cfg.Version.Source)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	svc := NewService()
	_, err := svc.Load(filepath.Join(t.TempDir(), "absent.yaml"), model.Flags{})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "packages: [unclosed")
	svc := NewService()
	if _, err := svc.Load(path, model.Flags{}); err == nil {
		t.Fatal("expected parse error")
	}
}
