package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunManagementCommandUnsupported(t *testing.T) {
	err := runManagementCommand("bogus", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported command") {
		t.Fatalf("expected unsupported command error, got %v", err)
	}
}

func TestRunDBCommandUsage(t *testing.T) {
	err := runDBCommand(nil)
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRunDBCommandVacuum(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	err := runDBCommand([]string{"vacuum", "--db-path", dbPath})
	if err != nil {
		t.Fatalf("vacuum failed: %v", err)
	}
}

func TestRunDBCommandPurge(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	err := runDBCommand([]string{"purge", "--db-path", dbPath, "--older-than", "7"})
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
}

func TestRunHistoryCommandUsage(t *testing.T) {
	err := runHistoryCommand(nil)
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRunHistoryCommandList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	err := runHistoryCommand([]string{"list", "--db-path", dbPath, "--limit", "5"})
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
}

func TestRunHistoryCommandTrendsExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	jsonPath := filepath.Join(dir, "trends.json")
	csvPath := filepath.Join(dir, "trends.csv")

	err := runHistoryCommand([]string{
		"trends",
		"--db-path", dbPath,
		"--trend-days", "7",
		"--export-json", jsonPath,
		"--export-csv", csvPath,
	})
	if err != nil {
		t.Fatalf("history trends failed: %v", err)
	}
	for _, p := range []string{jsonPath, csvPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected export file %s: %v", p, err)
		}
	}
}

func TestRunHistoryCommandShowBadID(t *testing.T) {
	err := runHistoryCommand([]string{"show", "not-a-number", "--db-path", filepath.Join(t.TempDir(), "history.db")})
	if err == nil {
		t.Fatal("expected parse error for non-numeric run id")
	}
}
