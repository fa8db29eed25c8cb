package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    target          TEXT NOT NULL,
    dev_version     INTEGER DEFAULT 0,
    version         TEXT,
    state           TEXT NOT NULL,
    exit_code       INTEGER DEFAULT 0,
    run_timestamp   DATETIME DEFAULT CURRENT_TIMESTAMP,
    duration_ms     INTEGER,
    cli_version     TEXT,
    run_flags       TEXT,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_runs_target_timestamp
    ON runs(target, run_timestamp);

CREATE TABLE IF NOT EXISTS run_steps (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id         INTEGER NOT NULL,
    name           TEXT NOT NULL,
    status         TEXT NOT NULL,
    duration_ms    INTEGER DEFAULT 0,
    exit_code      INTEGER DEFAULT 0,
    detail         TEXT,
    created_at     DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_steps_run ON run_steps(run_id);
CREATE INDEX IF NOT EXISTS idx_run_steps_status ON run_steps(status);
`
