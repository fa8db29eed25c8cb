// Package jsonoutput emits machine-readable run reports.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pywheeler/pywheeler/model"
)

// OutputRunJSON prints the run report as indented JSON to stdout.
func OutputRunJSON(report model.RunReport) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

// WriteRunJSON writes the run report as indented JSON to a file.
func WriteRunJSON(report model.RunReport, path string) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write run report %s: %w", path, err)
	}
	return nil
}
