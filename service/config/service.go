// Package config loads the pywheeler YAML configuration and merges it with
// command-line flags. Flags win over file values, file values win over
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pywheeler/pywheeler/model"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "pywheeler.yaml"

// NewService creates a new config service.
func NewService() Service {
	return &service{}
}

// Load reads the config file at path (or the default file if present), applies
// flag overrides and fills in defaults. A missing explicit path is an error; a
// missing default file is not.
func (s *service) Load(path string, flags model.Flags) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; flags and defaults cover everything.
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyOverrides(flags)
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyOverrides(flags model.Flags) {
	if len(flags.Packages) > 0 {
		c.Packages = flags.Packages
	}
	if flags.ReadmeIn != "" {
		c.Readme.Input = flags.ReadmeIn
	}
	if flags.ReadmeOut != "" {
		c.Readme.Output = flags.ReadmeOut
	}
}

func (c *Config) applyDefaults() {
	if len(c.Packages) == 0 {
		c.Packages = []string{"."}
	}
	if c.Readme.Input == "" {
		c.Readme.Input = "README.md"
	}
	if c.Readme.Output == "" {
		c.Readme.Output = c.Readme.Input
	}
	if c.Readme.Ref == "" {
		c.Readme.Ref = "main"
	}
	if c.Version.EnvVar == "" {
		c.Version.EnvVar = DefaultEnvVar
	}
	if c.Version.Source == "" {
		c.Version.Source = filepath.Join(c.Packages[0], "__init__.py")
	}
	if c.Build.Python == "" {
		c.Build.Python = "python3"
	}
	if c.Build.DistDir == "" {
		c.Build.DistDir = "dist"
	}
}
