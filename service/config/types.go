package config

import "github.com/pywheeler/pywheeler/model"

// DefaultEnvVar is the dev-version environment variable checked and set by the
// pipeline unless the config overrides it.
const DefaultEnvVar = "PYWHEELER_DEV_VERSION"

// ReadmeConfig describes the README rewrite performed before stamping.
type ReadmeConfig struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	RepoURL string `yaml:"repo_url"`
	Ref     string `yaml:"ref"`
}

// VersionConfig describes where the base version comes from and which
// environment variable carries the dev build number.
type VersionConfig struct {
	Source string `yaml:"source"`
	EnvVar string `yaml:"env_var"`
}

// BuildConfig describes how packages are installed and built.
type BuildConfig struct {
	Python  string `yaml:"python"`
	DistDir string `yaml:"dist_dir"`
}

// Config is the merged pipeline configuration: YAML file values with flag
// overrides and defaults applied.
type Config struct {
	Packages []string      `yaml:"packages"`
	Readme   ReadmeConfig  `yaml:"readme"`
	Version  VersionConfig `yaml:"version"`
	Build    BuildConfig   `yaml:"build"`
}

type service struct{}

// Service loads and merges pipeline configuration.
type Service interface {
	Load(path string, flags model.Flags) (Config, error)
}
