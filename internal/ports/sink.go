package ports

//go:generate mockgen -source=sink.go -destination=../mocks/sink_mock.go -package=mocks

import (
	"context"

	"productCatalog/internal/domain"
)

// IRunSink — запись итогов запусков генератора (PostgreSQL или ClickHouse).
type IRunSink interface {
	WriteRun(ctx context.Context, run domain.PublishRun) error
}
