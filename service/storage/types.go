package storage

import (
	"context"
	"time"

	"github.com/pywheeler/pywheeler/model"
)

// Service defines persistence and trend query operations for run history.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	ListSteps(runID int64) ([]StepRecord, error)
	GetTrends(days int) ([]TrendPoint, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveRunInput is the payload saved for a finished (or failed) pipeline run.
type SaveRunInput struct {
	RunUUID    string
	Target     model.TargetType
	DevVersion uint
	Version    string
	State      model.PipelineState
	ExitCode   int
	DurationMS int64
	CLIVersion string
	FlagsJSON  string
	Steps      []model.StepResult
}

// RunSummary provides compact run metadata.
type RunSummary struct {
	RunID      int64     `json:"run_id"`
	RunUUID    string    `json:"run_uuid"`
	Target     string    `json:"target"`
	Version    string    `json:"version"`
	State      string    `json:"state"`
	ExitCode   int       `json:"exit_code"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms"`
	CLIVersion string    `json:"cli_version"`
	StepCount  int       `json:"step_count"`
}

// StepRecord is a stored per-step outcome.
type StepRecord struct {
	RunID      int64  `json:"run_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	ExitCode   int    `json:"exit_code"`
	Detail     string `json:"detail"`
}

// TrendPoint is a daily aggregate for release trend visualizations.
type TrendPoint struct {
	Date          string  `json:"date"`
	Runs          int     `json:"runs"`
	Failures      int     `json:"failures"`
	TestRuns      int     `json:"test_runs"`
	ProdRuns      int     `json:"prod_runs"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}
