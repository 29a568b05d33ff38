package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productCatalog/internal/domain"
	"productCatalog/internal/infrastructure/click"
)

// setupRunWriter подключается к тестовому ClickHouse, создаёт и очищает таблицу.
func setupRunWriter(t *testing.T) (*click.RunWriter, *click.Client) {
	t.Helper()
	ctx := context.Background()

	client, err := click.New(ctx, &click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewRunWriter(client)
	require.NoError(t, writer.EnsureTable(ctx), "не удалось создать таблицу")

	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.publish_runs")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})
	return writer, client
}

func TestClickRunWriter_WriteRun(t *testing.T) {
	skipShort(t)
	writer, client := setupRunWriter(t)
	ctx := context.Background()

	run := domain.PublishRun{
		ID:        uuid.NewString(),
		Mode:      domain.ModeStream,
		StartedAt: time.Now().UTC(),
		Duration:  250 * time.Millisecond,
		Topics: []domain.TopicResult{
			{Topic: "create.products", Sent: 10},
			{Topic: "create.productsLanguage", Sent: 18, Failed: 2},
		},
	}

	require.NoError(t, writer.WriteRun(ctx, run))

	var rows, sent, failed uint64
	err := client.DB().QueryRowContext(ctx,
		"SELECT count(), sum(sent), sum(failed) FROM default.publish_runs WHERE run_id = ?", run.ID,
	).Scan(&rows, &sent, &failed)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rows)
	assert.Equal(t, uint64(28), sent)
	assert.Equal(t, uint64(2), failed)

	var mode string
	var durationMS uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT any(mode), any(duration_ms) FROM default.publish_runs WHERE run_id = ?", run.ID,
	).Scan(&mode, &durationMS)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeStream, mode)
	assert.Equal(t, uint64(250), durationMS)
}
