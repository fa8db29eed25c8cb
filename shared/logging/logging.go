// Package logging configures the structured logger used by the pipeline.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the run logger. Verbose raises the level to debug; logFile
// redirects output away from stderr so table rendering stays clean.
func NewLogger(verbose bool, logFile string) (*zap.Logger, error) {
	if !verbose && logFile == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		config.OutputPaths = []string{logFile}
		config.ErrorOutputPaths = []string{logFile}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
