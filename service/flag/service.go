package flag

import (
	"strings"

	"github.com/pywheeler/pywheeler/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	target := pflag.StringP("target", "t", "", "Release target type (Test or Prod)")
	devVersion := pflag.UintP("dev-version", "d", 0, "Dev build number appended to Test versions")
	versionFile := pflag.StringP("version-file", "f", "", "Path the computed version string is written to")
	packages := pflag.String("packages", "", "Comma-separated package directories to install and build")
	readmeIn := pflag.String("readme-in", "", "README input path (default from config)")
	readmeOut := pflag.String("readme-out", "", "README output path (empty means in-place)")
	configPath := pflag.StringP("config-path", "c", "", "Path to pywheeler config file")
	output := pflag.StringP("output", "o", "table", "Output format (table or json)")
	store := pflag.Bool("store", false, "Persist run results in local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.pywheeler/history.db)")
	dryRun := pflag.Bool("dry-run", false, "Print planned commands without executing them")
	verbose := pflag.Bool("verbose", false, "Enable debug logging")
	logFile := pflag.String("log-file", "", "Write structured logs to file instead of stderr")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	var parsedPackages []string
	if *packages != "" {
		for _, p := range strings.Split(*packages, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				parsedPackages = append(parsedPackages, p)
			}
		}
	}

	flags := model.Flags{
		Target:      *target,
		DevVersion:  *devVersion,
		VersionFile: *versionFile,
		Packages:    parsedPackages,
		ReadmeIn:    *readmeIn,
		ReadmeOut:   *readmeOut,
		ConfigPath:  *configPath,
		Output:      *output,
		Store:       *store,
		DBPath:      *dbPath,
		DryRun:      *dryRun,
		Verbose:     *verbose,
		LogFile:     *logFile,
		Version:     *version,
	}

	return flags, nil
}
