// Package steptable renders pipeline run results in a table format.
package steptable

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pywheeler/pywheeler/model"
)

// DrawRunTable renders the step results of a pipeline run.
func DrawRunTable(report model.RunReport) {
	fmt.Printf("\n📦 Release pipeline · target %s", report.Target)
	if report.Version != "" {
		fmt.Printf(" · version %s", report.Version)
	}
	fmt.Println()

	switch report.State {
	case model.StateDone:
		fmt.Printf("   %s\n", text.FgGreen.Sprintf("✔ %s in %s", report.State, roundDuration(report.Duration)))
	case model.StateFailed:
		fmt.Printf("   %s\n", text.FgRed.Sprintf("✘ %s after %s", report.State, roundDuration(report.Duration)))
	default:
		fmt.Printf("   %s\n", report.State)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Step", "Status", "Duration", "Exit", "Detail"})

	for _, step := range report.Steps {
		t.AppendRow(table.Row{
			step.Name,
			formatStatus(step.Status),
			roundDuration(step.Duration),
			step.ExitCode,
			truncate(step.Detail, 60),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	drawArtifacts(report)

	if report.Error != "" {
		fmt.Println("\n" + text.FgRed.Sprint("Error: "+report.Error))
	}
}

func drawArtifacts(report model.RunReport) {
	var artifacts []string
	for _, step := range report.Steps {
		artifacts = append(artifacts, step.Artifacts...)
	}
	if len(artifacts) == 0 {
		return
	}

	fmt.Println("\n" + text.FgCyan.Sprint("🛞 Built artifacts"))
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Artifact"})
	for _, a := range artifacts {
		t.AppendRow(table.Row{a})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func formatStatus(status model.StepStatus) string {
	switch status {
	case model.StepOK:
		return text.FgGreen.Sprint(string(status))
	case model.StepFailed:
		return text.FgRed.Sprint(string(status))
	case model.StepSkipped:
		return text.FgYellow.Sprint(string(status))
	default:
		return string(status)
	}
}

func roundDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
