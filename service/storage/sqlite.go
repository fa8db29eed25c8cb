// Package storage persists pipeline run history in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pywheeler/pywheeler/model"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.pywheeler/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.RunUUID == "" {
		return 0, errors.New("run uuid is required")
	}
	if input.Target == "" {
		return 0, errors.New("target is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, target, dev_version, version, state, exit_code,
			duration_ms, cli_version, run_flags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, string(input.Target), input.DevVersion, input.Version, string(input.State),
		input.ExitCode, input.DurationMS, input.CLIVersion, input.FlagsJSON)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, step := range input.Steps {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_steps(run_id, name, status, duration_ms, exit_code, detail)
			VALUES (?, ?, ?, ?, ?, ?)
		`, runID, string(step.Name), string(step.Status), step.Duration.Milliseconds(), step.ExitCode, step.Detail)
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT r.run_id, r.run_uuid, r.target, r.version, r.state, r.exit_code,
			r.run_timestamp, r.duration_ms, r.cli_version,
			(SELECT COUNT(*) FROM run_steps rs WHERE rs.run_id = r.run_id)
		FROM runs r
		ORDER BY r.run_timestamp DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var rsum RunSummary
		var version sql.NullString
		if err := rows.Scan(&rsum.RunID, &rsum.RunUUID, &rsum.Target, &version, &rsum.State,
			&rsum.ExitCode, &rsum.Timestamp, &rsum.DurationMS, &rsum.CLIVersion, &rsum.StepCount); err != nil {
			return nil, err
		}
		rsum.Version = version.String
		runs = append(runs, rsum)
	}
	return runs, rows.Err()
}

func (s *service) ListSteps(runID int64) ([]StepRecord, error) {
	rows, err := s.db.Query(`
		SELECT run_id, name, status, duration_ms, exit_code, COALESCE(detail, '')
		FROM run_steps WHERE run_id=? ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := []StepRecord{}
	for rows.Next() {
		var rec StepRecord
		if err := rows.Scan(&rec.RunID, &rec.Name, &rec.Status, &rec.DurationMS, &rec.ExitCode, &rec.Detail); err != nil {
			return nil, err
		}
		steps = append(steps, rec)
	}
	return steps, rows.Err()
}

func (s *service) GetTrends(days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	rows, err := s.db.Query(`
		SELECT
			DATE(run_timestamp) as day,
			COUNT(*),
			SUM(CASE WHEN state = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN target = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN target = ? THEN 1 ELSE 0 END),
			AVG(duration_ms)
		FROM runs
		WHERE run_timestamp >= DATETIME('now', ?)
		GROUP BY DATE(run_timestamp)
		ORDER BY day ASC
	`, string(model.StateFailed), string(model.TargetTest), string(model.TargetProd),
		fmt.Sprintf("-%d day", days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []TrendPoint{}
	for rows.Next() {
		var p TrendPoint
		var avg sql.NullFloat64
		if err := rows.Scan(&p.Date, &p.Runs, &p.Failures, &p.TestRuns, &p.ProdRuns, &avg); err != nil {
			return nil, err
		}
		p.AvgDurationMS = avg.Float64
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE run_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
