package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/pflag"
	"github.com/pywheeler/pywheeler/service/preflight"
	"github.com/pywheeler/pywheeler/service/runner"
	"github.com/pywheeler/pywheeler/service/storage"
	"github.com/pywheeler/pywheeler/shared/historytable"
)

func runManagementCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	case "doctor":
		return runDoctorCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge runs older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: pywheeler db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "reindex":
		return store.Reindex(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d runs\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of rows to list")
	trendDays := fs.Int("trend-days", 30, "Trend window in days")
	exportJSON := fs.String("export-json", "", "Write trend data to a JSON file")
	exportCSV := fs.String("export-csv", "", "Write trend data to a CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: pywheeler history <list|show|trends>")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		runs, err := store.GetRecentRuns(*limit)
		if err != nil {
			return err
		}
		historytable.RenderRunTable(runs)
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: pywheeler history show <run-id>")
		}
		runID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return err
		}
		steps, err := store.ListSteps(runID)
		if err != nil {
			return err
		}
		historytable.RenderStepTable(steps)
		return nil
	case "trends":
		points, err := store.GetTrends(*trendDays)
		if err != nil {
			return err
		}
		historytable.RenderTrendTable(points)
		return exportTrends(points, *exportJSON, *exportCSV)
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}

func exportTrends(points []storage.TrendPoint, jsonPath, csvPath string) error {
	if strings.TrimSpace(jsonPath) != "" {
		b, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
			return err
		}
	}
	if strings.TrimSpace(csvPath) != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w := csv.NewWriter(f)
		defer w.Flush()
		_ = w.Write([]string{"date", "runs", "failures", "test_runs", "prod_runs", "avg_duration_ms"})
		for _, p := range points {
			_ = w.Write([]string{
				p.Date,
				strconv.Itoa(p.Runs),
				strconv.Itoa(p.Failures),
				strconv.Itoa(p.TestRuns),
				strconv.Itoa(p.ProdRuns),
				strconv.FormatFloat(p.AvgDurationMS, 'f', 0, 64),
			})
		}
	}
	return nil
}

func runDoctorCommand(args []string) error {
	fs := pflag.NewFlagSet("doctor", pflag.ContinueOnError)
	python := fs.String("python", "python3", "Python interpreter to probe")
	jsonOut := fs.Bool("json", false, "Emit probe results as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	probes, err := preflight.NewService(runner.NewService(), *python).Check(context.Background())
	if err != nil {
		return err
	}

	if *jsonOut {
		b, err := json.MarshalIndent(probes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Tool", "Command", "Status", "Version"})
	for _, p := range probes {
		status := text.FgGreen.Sprint("OK")
		detail := p.Version
		if !p.Available {
			status = text.FgRed.Sprint("MISSING")
			detail = p.Detail
		}
		t.AppendRow(table.Row{p.Name, p.Command, status, detail})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
