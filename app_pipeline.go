package main

import (
	"fmt"

	"github.com/pywheeler/pywheeler/model"
	"github.com/pywheeler/pywheeler/service/builder"
	"github.com/pywheeler/pywheeler/service/config"
	"github.com/pywheeler/pywheeler/service/guard"
	"github.com/pywheeler/pywheeler/service/installer"
	"github.com/pywheeler/pywheeler/service/orchestrator"
	"github.com/pywheeler/pywheeler/service/output"
	"github.com/pywheeler/pywheeler/service/readme"
	"github.com/pywheeler/pywheeler/service/runner"
	"github.com/pywheeler/pywheeler/service/stamper"
	"github.com/pywheeler/pywheeler/service/storage"
	"github.com/pywheeler/pywheeler/shared/banner"
	"github.com/pywheeler/pywheeler/shared/logging"
	"github.com/pywheeler/pywheeler/shared/spinner"
)

// runPipeline wires the services and executes the release pipeline. The
// returned int is the process exit code: the exit code of the first failing
// child process when there is one, 1 for any other failure, 0 on success.
func runPipeline(flags model.Flags, versionInfo model.VersionInfo) (int, error) {
	logger, err := logging.NewLogger(flags.Verbose, flags.LogFile)
	if err != nil {
		return 1, fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewService().Load(flags.ConfigPath, flags)
	if err != nil {
		return 1, err
	}

	if flags.Output != "json" && !flags.Version {
		banner.DrawBannerTitle()
		spinner.StartSpinner("Validating environment...")
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			spinner.StopSpinner()
			return 1, fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	run := runner.NewService()
	orchestratorService := orchestrator.NewService(
		guard.NewService(),
		installer.NewService(run, cfg.Build.Python, cfg.Packages),
		readme.NewService(cfg.Readme.RepoURL, cfg.Readme.Ref, cfg.Readme.Input, cfg.Readme.Output),
		stamper.NewService(cfg.Version.Source, cfg.Version.EnvVar),
		builder.NewService(run, cfg.Build.Python, cfg.Build.DistDir, cfg.Packages),
		output.NewService(flags.Output),
		storageService,
		cfg,
		versionInfo,
		logger,
	)

	report, err := orchestratorService.Orchestrate(flags)
	return report.ExitCode, err
}
