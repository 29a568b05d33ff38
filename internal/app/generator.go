package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"productCatalog/internal/generator"
	"productCatalog/internal/infrastructure/click"
	"productCatalog/internal/infrastructure/kafka"
	"productCatalog/internal/infrastructure/pg"
	"productCatalog/internal/pkg/logger"
	"productCatalog/internal/ports"
	"productCatalog/internal/usecase/publishing"
)

// Generator — зависимости генератора: издатель, генератор записей и журнал запусков.
type Generator struct {
	cfg     GeneratorConfig
	log     *slog.Logger
	closers []func() error
}

// NewGenerator создаёт обвязку генератора с конфигом.
func NewGenerator(cfg GeneratorConfig) *Generator {
	log := logger.NewWithLevel(cfg.LogLevel, cfg.LogFile)
	slog.SetDefault(log)
	return &Generator{cfg: cfg, log: log}
}

// Logger возвращает логгер генератора.
func (g *Generator) Logger() *slog.Logger { return g.log }

// Config возвращает конфиг генератора.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// UseCase подключает журнал запусков (если задан) и собирает use case публикации.
// После использования вызови Close.
func (g *Generator) UseCase(ctx context.Context, seed uint64) (*publishing.UseCase, error) {
	sink, err := g.openSink(ctx)
	if err != nil {
		return nil, fmt.Errorf("sink %s: %w", g.cfg.Sink, err)
	}
	pub := kafka.NewPublisher(&g.cfg.Kafka, g.log)
	gen := generator.New(generator.WithSeed(seed))
	return publishing.New(pub, gen, sink, g.cfg.Publish, g.log), nil
}

// Close закрывает соединения, открытые в UseCase.
func (g *Generator) Close() error {
	var errs []error
	for i := len(g.closers) - 1; i >= 0; i-- {
		errs = append(errs, g.closers[i]())
	}
	g.closers = nil
	return errors.Join(errs...)
}

func (g *Generator) openSink(ctx context.Context) (ports.IRunSink, error) {
	switch strings.ToLower(strings.TrimSpace(g.cfg.Sink)) {
	case "", SinkNone:
		return nil, nil
	case SinkPostgres:
		db, err := pg.New(ctx, &g.cfg.PG)
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, db.Close)
		if err := pg.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewRunSink(db, g.log), nil
	case SinkClickHouse:
		cli, err := click.New(ctx, &g.cfg.ClickHouse)
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, cli.Close)
		w := click.NewRunWriter(cli)
		if err := w.EnsureTable(ctx); err != nil {
			return nil, fmt.Errorf("ensure table: %w", err)
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want none, postgres or clickhouse)", g.cfg.Sink)
	}
}
