package app

import (
	"context"
	"fmt"
	"log/slog"

	apihttp "productCatalog/internal/api/http"
	"productCatalog/internal/api/http/controllers/products"
	"productCatalog/internal/api/http/controllers/system"
	"productCatalog/internal/infrastructure/mongo"
	"productCatalog/internal/infrastructure/redis"
	"productCatalog/internal/pkg/logger"
	"productCatalog/internal/ports"
	catalogUsecase "productCatalog/internal/usecase/catalog"
)

// App — HTTP-сервис каталога.
type App struct {
	cfg CatalogConfig
	log *slog.Logger
}

// New создаёт приложение с конфигом (хранилища подключаются в Run).
func New(cfg CatalogConfig) *App {
	log := logger.NewWithLevel(cfg.LogLevel, cfg.LogFile)
	slog.SetDefault(log)
	return &App{cfg: cfg, log: log}
}

// Run подключается к MongoDB (и Redis, если включён), собирает зависимости и запускает HTTP-сервер.
// Блокируется до отмены ctx, затем делает graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	mcli, err := mongo.New(ctx, &a.cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		if err := mcli.Close(context.Background()); err != nil {
			a.log.Warn("mongo disconnect", "error", err)
		}
	}()

	var cache ports.IProductCache
	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		cache = redis.NewProductCache(rdb, a.cfg.Redis.TTL, a.log)
	}

	repo := mongo.NewProductRepo(mcli, a.log)
	uc := catalogUsecase.New(repo, cache, a.log)

	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(uc, a.log),
		products.New(uc, a.log))

	a.log.Info("catalog started", "http", srv.Addr(), "mongo_db", a.cfg.Mongo.Database, "cache", a.cfg.Redis.Enabled)
	return srv.Start(ctx)
}
