package catalog

import (
	"log/slog"
	"time"

	"productCatalog/internal/ports"
)

var _ ports.ICatalogUseCase = (*UseCase)(nil)

// UseCase — чтение каталога: репозиторий продуктов и необязательный кэш карточек.
type UseCase struct {
	repo  ports.IProductRepository
	cache ports.IProductCache
	log   *slog.Logger
	now   func() time.Time
}

// New создаёт use case каталога. cache может быть nil — тогда всё читается из репозитория.
func New(repo ports.IProductRepository, cache ports.IProductCache, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, log: log, now: time.Now}
}
