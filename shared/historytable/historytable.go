// Package historytable renders stored run history and trend aggregates.
package historytable

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pywheeler/pywheeler/service/storage"
)

// RenderRunTable prints an ASCII table of recent pipeline runs.
func RenderRunTable(runs []storage.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Timestamp", "Target", "Version", "State", "Exit", "Duration", "Steps"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.RunID,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Target,
			r.Version,
			r.State,
			r.ExitCode,
			(time.Duration(r.DurationMS) * time.Millisecond).String(),
			r.StepCount,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderStepTable prints the stored steps of a single run.
func RenderStepTable(steps []storage.StepRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Step", "Status", "Duration", "Exit", "Detail"})
	for _, s := range steps {
		t.AppendRow(table.Row{
			s.Name,
			s.Status,
			(time.Duration(s.DurationMS) * time.Millisecond).String(),
			s.ExitCode,
			s.Detail,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderTrendTable prints daily release trend aggregates.
func RenderTrendTable(points []storage.TrendPoint) {
	if len(points) == 0 {
		fmt.Println("No trend data available")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Runs", "Failures", "Test", "Prod", "Avg Duration"})
	for _, p := range points {
		t.AppendRow(table.Row{
			p.Date,
			p.Runs,
			p.Failures,
			p.TestRuns,
			p.ProdRuns,
			(time.Duration(p.AvgDurationMS) * time.Millisecond).Round(time.Millisecond).String(),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
