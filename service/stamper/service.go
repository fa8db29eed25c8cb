// Package stamper computes the release version string and writes it to the
// caller-specified file. When the dev-version environment variable is set the
// base version gets a PEP 440-style ".devN" suffix, marking a test build.
package stamper

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var versionAttrPattern = regexp.MustCompile(`(?m)^__version__\s*=\s*["']([^"']+)["']`)

type service struct {
	source    string
	envVar    string
	lookupEnv func(string) (string, bool)
}

// Service computes and writes the package version.
type Service interface {
	Compute() (string, error)
	Stamp(versionFile string) (string, error)
}

// NewService creates a new version stamper. source is the file holding the
// base version; envVar is the dev-version variable consulted at stamp time.
func NewService(source, envVar string) Service {
	return &service{source: source, envVar: envVar, lookupEnv: os.LookupEnv}
}

// NewServiceWithEnv creates a stamper backed by a custom environment lookup.
func NewServiceWithEnv(source, envVar string, lookupEnv func(string) (string, bool)) Service {
	return &service{source: source, envVar: envVar, lookupEnv: lookupEnv}
}

// Compute returns the version string without writing anything.
func (s *service) Compute() (string, error) {
	base, err := s.baseVersion()
	if err != nil {
		return "", err
	}
	raw, ok := s.lookupEnv(s.envVar)
	if !ok {
		return base, nil
	}
	dev, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid %s value %q: %w", s.envVar, raw, err)
	}
	return fmt.Sprintf("%s.dev%d", base, dev), nil
}

// Stamp computes the version and overwrites versionFile with it.
func (s *service) Stamp(versionFile string) (string, error) {
	version, err := s.Compute()
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(versionFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create version file directory: %w", err)
		}
	}
	if err := os.WriteFile(versionFile, []byte(version+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write version file %s: %w", versionFile, err)
	}
	return version, nil
}

// baseVersion extracts the version from the configured source. Python modules
// are scanned for a __version__ attribute; any other file is treated as a
// plain version file holding the string itself.
func (s *service) baseVersion() (string, error) {
	data, err := os.ReadFile(s.source)
	if err != nil {
		return "", fmt.Errorf("failed to read version source %s: %w", s.source, err)
	}
	if strings.HasSuffix(s.source, ".py") {
		m := versionAttrPattern.FindSubmatch(data)
		if m == nil {
			return "", fmt.Errorf("no __version__ attribute found in %s", s.source)
		}
		return string(m[1]), nil
	}
	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", fmt.Errorf("version source %s is empty", s.source)
	}
	return version, nil
}
