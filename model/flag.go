package model

// Flags represents the command line flags for a pipeline run.
type Flags struct {
	Target      string
	DevVersion  uint
	VersionFile string
	Packages    []string
	ReadmeIn    string
	ReadmeOut   string
	ConfigPath  string
	Output      string
	Store       bool
	DBPath      string
	DryRun      bool
	Verbose     bool
	LogFile     string
	Version     bool
}
