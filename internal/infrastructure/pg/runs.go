package pg

import (
	"context"
	"fmt"
	"log/slog"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IRunSink = (*RunSink)(nil)

// RunSink реализует ports.IRunSink: одна строка publish_runs на каждый топик запуска.
type RunSink struct {
	db  *DB
	log *slog.Logger
}

// NewRunSink возвращает журнал запусков в PostgreSQL.
func NewRunSink(db *DB, log *slog.Logger) *RunSink {
	return &RunSink{db: db, log: log}
}

// WriteRun записывает итоги запуска в одной транзакции.
func (s *RunSink) WriteRun(ctx context.Context, run domain.PublishRun) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, t := range run.Topics {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO publish_runs (run_id, mode, topic, sent, failed, duration_ms, started_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			run.ID, run.Mode, t.Topic, t.Sent, t.Failed, run.Duration.Milliseconds(), run.StartedAt)
		if err != nil {
			s.log.Debug("WriteRun failed", "run_id", run.ID, "topic", t.Topic, "error", err)
			return fmt.Errorf("insert publish run: %w", err)
		}
	}
	return tx.Commit()
}

// Runs возвращает строки запуска (для проверки и отладки).
func (s *RunSink) Runs(ctx context.Context, runID string) ([]domain.TopicResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, sent, failed FROM publish_runs WHERE run_id = $1 ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.TopicResult
	for rows.Next() {
		var t domain.TopicResult
		if err := rows.Scan(&t.Topic, &t.Sent, &t.Failed); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
