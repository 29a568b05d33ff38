package click

import (
	"context"
	"fmt"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IRunSink = (*RunWriter)(nil)

const publishRunsFull = "default.publish_runs"

// RunWriter пишет итоги запусков генератора в ClickHouse для аналитики по топикам и режимам.
type RunWriter struct {
	db *Client
}

// NewRunWriter создаёт писатель запусков.
func NewRunWriter(db *Client) *RunWriter {
	return &RunWriter{db: db}
}

// EnsureTable создаёт таблицу publish_runs в default, если её ещё нет. Вызови один раз при старте.
func (w *RunWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id UUID,
			mode LowCardinality(String),
			topic String,
			sent UInt32,
			failed UInt32,
			duration_ms UInt64,
			started_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (started_at, topic)
		PARTITION BY toYYYYMM(started_at)`,
		publishRunsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteRun реализует ports.IRunSink: одна строка на топик, вставка одной пачкой.
func (w *RunWriter) WriteRun(ctx context.Context, run domain.PublishRun) error {
	tx, err := w.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (run_id, mode, topic, sent, failed, duration_ms, started_at)",
		publishRunsFull,
	))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	for _, t := range run.Topics {
		_, err := stmt.ExecContext(ctx,
			run.ID, run.Mode, t.Topic, uint32(t.Sent), uint32(t.Failed),
			uint64(run.Duration.Milliseconds()), run.StartedAt)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("append publish run: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert publish runs: %w", err)
	}
	return nil
}
