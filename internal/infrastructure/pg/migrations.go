package pg

import (
	"context"
)

const createPublishRunsTable = `
CREATE TABLE IF NOT EXISTS publish_runs (
	id          SERIAL PRIMARY KEY,
	run_id      UUID NOT NULL,
	mode        VARCHAR(16) NOT NULL,
	topic       TEXT NOT NULL,
	sent        INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	duration_ms BIGINT NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS publish_runs_run_id_idx ON publish_runs (run_id);
`

// Migrate создаёт таблицу publish_runs, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createPublishRunsTable)
	return err
}
