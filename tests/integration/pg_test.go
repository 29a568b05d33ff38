package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productCatalog/internal/domain"
	"productCatalog/internal/infrastructure/pg"
)

// setupRunSink подключается к тестовому PostgreSQL, применяет миграцию и очищает таблицу.
func setupRunSink(t *testing.T) *pg.RunSink {
	t.Helper()
	ctx := context.Background()

	db, err := pg.New(ctx, &pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	require.NoError(t, pg.Migrate(ctx, db), "миграция должна пройти")
	require.NoError(t, pg.Migrate(ctx, db), "миграция идемпотентна")

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE publish_runs RESTART IDENTITY")
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return pg.NewRunSink(db, newTestLogger())
}

func TestRunSink_WriteRun(t *testing.T) {
	skipShort(t)
	sink := setupRunSink(t)
	ctx := context.Background()

	run := domain.PublishRun{
		ID:        uuid.NewString(),
		Mode:      domain.ModeBatch,
		StartedAt: time.Now().UTC(),
		Duration:  1500 * time.Millisecond,
		Topics: []domain.TopicResult{
			{Topic: "create.products", Sent: 2},
			{Topic: "create.productsLanguage", Sent: 3, Failed: 1},
		},
	}

	require.NoError(t, sink.WriteRun(ctx, run))

	rows, err := sink.Runs(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Topics, rows)
}

func TestRunSink_EmptyRun(t *testing.T) {
	skipShort(t)
	sink := setupRunSink(t)
	ctx := context.Background()

	run := domain.PublishRun{ID: uuid.NewString(), Mode: domain.ModeOne, StartedAt: time.Now()}

	require.NoError(t, sink.WriteRun(ctx, run))

	rows, err := sink.Runs(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
