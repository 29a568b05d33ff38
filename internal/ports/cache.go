package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"

	"productCatalog/internal/domain"
)

// IProductCache — кэш карточек продукта по id. Промахи не кэшируются.
type IProductCache interface {
	Get(ctx context.Context, id string) (product *domain.Product, found bool, err error)
	Set(ctx context.Context, product domain.Product) error
}
