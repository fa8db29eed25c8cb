// Package main is the entry point for the pywheeler application.
package main

import (
	"fmt"
	"os"

	"github.com/pywheeler/pywheeler/model"
	"github.com/pywheeler/pywheeler/service/flag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	if code != 0 {
		os.Exit(code)
	}
}

func run() (int, error) {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history", "doctor":
			if err := runManagementCommand(os.Args[1], os.Args[2:]); err != nil {
				return 1, err
			}
			return 0, nil
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return 1, fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	return runPipeline(flags, versionInfo)
}
