// Package orchestrator coordinates the execution of the release pipeline. The
// steps run strictly in order; the first failure aborts the run and no later
// step executes. Artifacts written by earlier steps are left on disk.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pywheeler/pywheeler/model"
	"github.com/pywheeler/pywheeler/service/builder"
	"github.com/pywheeler/pywheeler/service/config"
	"github.com/pywheeler/pywheeler/service/guard"
	"github.com/pywheeler/pywheeler/service/installer"
	"github.com/pywheeler/pywheeler/service/output"
	"github.com/pywheeler/pywheeler/service/readme"
	"github.com/pywheeler/pywheeler/service/runner"
	"github.com/pywheeler/pywheeler/service/stamper"
	"github.com/pywheeler/pywheeler/service/storage"
	"github.com/pywheeler/pywheeler/shared/spinner"
	"go.uber.org/zap"
)

// NewService creates a new orchestrator service.
func NewService(
	guardService guard.Service,
	installerService installer.Service,
	readmeService readme.Service,
	stamperService stamper.Service,
	builderService builder.Service,
	outputService output.Service,
	storageService storage.Service,
	cfg config.Config,
	versionInfo model.VersionInfo,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		guardService:     guardService,
		installerService: installerService,
		readmeService:    readmeService,
		stamperService:   stamperService,
		builderService:   builderService,
		outputService:    outputService,
		storageService:   storageService,
		cfg:              cfg,
		versionInfo:      versionInfo,
		logger:           logger,
		setEnv:           os.Setenv,
		unsetEnv:         os.Unsetenv,
		idFunc:           uuid.NewString,
	}
}

// Orchestrate runs the full pipeline for the given flags and renders the run
// report. The returned report carries the exit code the process should
// surface; the error is non-nil whenever the run did not reach Done.
func (s *service) Orchestrate(flags model.Flags) (model.RunReport, error) {
	if flags.Version {
		s.versionWorkflow()
		return model.RunReport{State: model.StateDone}, nil
	}

	report, err := s.releaseWorkflow(flags)

	s.outputService.StopSpinner()
	if renderErr := s.outputService.RenderRun(report); renderErr != nil && err == nil {
		err = renderErr
	}

	if s.storageService != nil {
		if saveErr := s.saveRun(flags, report); saveErr != nil {
			s.logger.Warn("failed to persist run", zap.Error(saveErr))
		}
	}

	return report, err
}

func (s *service) releaseWorkflow(flags model.Flags) (model.RunReport, error) {
	ctx := context.Background()
	startedAt := time.Now()

	report := model.RunReport{
		RunUUID:    s.idFunc(),
		DevVersion: flags.DevVersion,
		State:      model.StateStart,
		StartedAt:  startedAt,
	}
	fail := func(step model.StepName, start time.Time, err error) (model.RunReport, error) {
		result := model.StepResult{
			Name:     step,
			Status:   model.StepFailed,
			Duration: time.Since(start),
			Detail:   err.Error(),
			ExitCode: exitCodeOf(err),
		}
		report.Steps = append(report.Steps, result)
		report.State = model.StateFailed
		report.Error = err.Error()
		report.ExitCode = result.ExitCode
		if report.ExitCode == 0 {
			report.ExitCode = 1
		}
		report.Duration = time.Since(startedAt)
		s.logger.Error("pipeline step failed",
			zap.String("step", string(step)),
			zap.Int("exit_code", result.ExitCode),
			zap.Error(err))
		return report, fmt.Errorf("step %s failed: %w", step, err)
	}

	// Environment guard: no side effects before this passes.
	stepStart := time.Now()
	target, err := s.guardService.Validate(flags.Target, s.cfg.Version.EnvVar)
	if err != nil {
		return fail(model.StepValidate, stepStart, err)
	}
	report.Target = target
	report.State = model.StateValidated
	report.Steps = append(report.Steps, okStep(model.StepValidate, stepStart, fmt.Sprintf("target %s, %s unset", target, s.cfg.Version.EnvVar)))
	s.logger.Debug("environment validated", zap.String("target", string(target)))

	if flags.DryRun {
		s.dryRunWorkflow(&report, flags)
		report.Duration = time.Since(startedAt)
		return report, nil
	}

	// Editable installs so stamping and building see the working tree.
	stepStart = time.Now()
	spinner.UpdateSpinner("Installing packages in editable mode...")
	if _, err := s.installerService.Install(ctx); err != nil {
		return fail(model.StepInstall, stepStart, err)
	}
	report.State = model.StateInstalled
	report.Steps = append(report.Steps, okStep(model.StepInstall, stepStart, fmt.Sprintf("%d package(s)", len(s.cfg.Packages))))
	s.logger.Debug("packages installed", zap.Strings("packages", s.cfg.Packages))

	// README rewrite runs before the env var is set so published links never
	// encode a dev version.
	stepStart = time.Now()
	spinner.UpdateSpinner("Rewriting README links...")
	if err := s.readmeService.Process(); err != nil {
		return fail(model.StepReadme, stepStart, err)
	}
	report.State = model.StateReadmeUpdated
	report.Steps = append(report.Steps, okStep(model.StepReadme, stepStart, s.readmeService.OutputPath()))

	if target == model.TargetTest {
		if err := s.setEnv(s.cfg.Version.EnvVar, strconv.FormatUint(uint64(flags.DevVersion), 10)); err != nil {
			return fail(model.StepStamp, time.Now(), fmt.Errorf("failed to set %s: %w", s.cfg.Version.EnvVar, err))
		}
		defer func() { _ = s.unsetEnv(s.cfg.Version.EnvVar) }()
		report.State = model.StateEnvSet
		s.logger.Debug("dev version exported",
			zap.String("variable", s.cfg.Version.EnvVar),
			zap.Uint("dev_version", flags.DevVersion))
	}

	stepStart = time.Now()
	spinner.UpdateSpinner("Stamping version file...")
	version, err := s.stamperService.Stamp(flags.VersionFile)
	if err != nil {
		return fail(model.StepStamp, stepStart, err)
	}
	report.Version = version
	report.State = model.StateVersionStamped
	report.Steps = append(report.Steps, okStep(model.StepStamp, stepStart, fmt.Sprintf("%s -> %s", version, flags.VersionFile)))
	s.logger.Info("version stamped", zap.String("version", version), zap.String("file", flags.VersionFile))

	stepStart = time.Now()
	spinner.UpdateSpinner("Building sdist and wheel artifacts...")
	artifacts, err := s.builderService.Build(ctx)
	if err != nil {
		return fail(model.StepBuild, stepStart, err)
	}
	buildStep := okStep(model.StepBuild, stepStart, fmt.Sprintf("%d artifact(s)", len(artifacts)))
	buildStep.Artifacts = artifacts
	report.Steps = append(report.Steps, buildStep)
	report.State = model.StateBuilt
	s.logger.Info("artifacts built", zap.Strings("artifacts", artifacts))

	report.State = model.StateDone
	report.Duration = time.Since(startedAt)
	return report, nil
}

// dryRunWorkflow records the commands the pipeline would run without touching
// the filesystem or the environment.
func (s *service) dryRunWorkflow(report *model.RunReport, flags model.Flags) {
	plan := []struct {
		name   model.StepName
		detail string
	}{
		{model.StepInstall, planDetail(s.installerService.Commands())},
		{model.StepReadme, fmt.Sprintf("rewrite %s", s.readmeService.OutputPath())},
		{model.StepStamp, fmt.Sprintf("write version to %s", flags.VersionFile)},
		{model.StepBuild, planDetail(s.builderService.Commands())},
	}
	for _, p := range plan {
		report.Steps = append(report.Steps, model.StepResult{
			Name:   p.name,
			Status: model.StepSkipped,
			Detail: p.detail,
		})
	}
	report.State = model.StateDone
}

func (s *service) versionWorkflow() {
	s.outputService.StopSpinner()

	fmt.Printf("pywheeler version %s\n", s.versionInfo.Version)
	fmt.Printf("commit: %s\n", s.versionInfo.Commit)
	fmt.Printf("built at: %s\n", s.versionInfo.Date)
}

func (s *service) saveRun(flags model.Flags, report model.RunReport) error {
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		flagsJSON = []byte("{}")
	}
	_, err = s.storageService.SaveRun(context.Background(), storage.SaveRunInput{
		RunUUID:    report.RunUUID,
		Target:     report.Target,
		DevVersion: report.DevVersion,
		Version:    report.Version,
		State:      report.State,
		ExitCode:   report.ExitCode,
		DurationMS: report.Duration.Milliseconds(),
		CLIVersion: s.versionInfo.Version,
		FlagsJSON:  string(flagsJSON),
		Steps:      report.Steps,
	})
	return err
}

func okStep(name model.StepName, start time.Time, detail string) model.StepResult {
	return model.StepResult{
		Name:     name,
		Status:   model.StepOK,
		Duration: time.Since(start),
		Detail:   detail,
	}
}

func exitCodeOf(err error) int {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 0
}

func planDetail(cmds [][]string) string {
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, strings.Join(c, " "))
	}
	return strings.Join(lines, "; ")
}
