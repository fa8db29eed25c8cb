package model

import (
	"fmt"
	"strings"
	"time"
)

// TargetType selects whether the pipeline produces a test or production release.
type TargetType string

const (
	TargetTest TargetType = "Test"
	TargetProd TargetType = "Prod"
)

// ParseTargetType canonicalizes a target string, accepting any casing.
func ParseTargetType(raw string) (TargetType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "test":
		return TargetTest, nil
	case "prod":
		return TargetProd, nil
	default:
		return "", &ConfigurationError{
			Field:   "target",
			Value:   raw,
			Allowed: []string{string(TargetTest), string(TargetProd)},
		}
	}
}

// PipelineState tracks progress through the release pipeline.
type PipelineState string

const (
	StateStart          PipelineState = "Start"
	StateValidated      PipelineState = "Validated"
	StateInstalled      PipelineState = "Installed"
	StateReadmeUpdated  PipelineState = "ReadmeUpdated"
	StateEnvSet         PipelineState = "EnvSet"
	StateVersionStamped PipelineState = "VersionStamped"
	StateBuilt          PipelineState = "Built"
	StateDone           PipelineState = "Done"
	StateFailed         PipelineState = "Failed"
)

// StepName identifies a pipeline step.
type StepName string

const (
	StepValidate StepName = "validate"
	StepInstall  StepName = "install"
	StepReadme   StepName = "readme"
	StepStamp    StepName = "stamp"
	StepBuild    StepName = "build"
)

// StepStatus is the outcome of a single pipeline step.
type StepStatus string

const (
	StepOK      StepStatus = "OK"
	StepFailed  StepStatus = "FAILED"
	StepSkipped StepStatus = "SKIPPED"
)

// StepResult records the outcome and timing of one pipeline step.
type StepResult struct {
	Name      StepName      `json:"name"`
	Status    StepStatus    `json:"status"`
	Duration  time.Duration `json:"duration_ns"`
	ExitCode  int           `json:"exit_code"`
	Detail    string        `json:"detail,omitempty"`
	Artifacts []string      `json:"artifacts,omitempty"`
}

// RunReport is the full record of a pipeline run.
type RunReport struct {
	RunUUID    string        `json:"run_uuid"`
	Target     TargetType    `json:"target"`
	DevVersion uint          `json:"dev_version,omitempty"`
	Version    string        `json:"version,omitempty"`
	State      PipelineState `json:"state"`
	ExitCode   int           `json:"exit_code"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
	Steps      []StepResult  `json:"steps"`
	Error      string        `json:"error,omitempty"`
}

// Summary returns a one-line description suitable for logs.
func (r RunReport) Summary() string {
	return fmt.Sprintf("run %s target=%s state=%s version=%s steps=%d",
		r.RunUUID, r.Target, r.State, r.Version, len(r.Steps))
}
