package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"productCatalog/internal/domain"
)

// IProductRepository — чтение коллекции products. Мягко удалённые записи не возвращаются.
type IProductRepository interface {
	// List возвращает до domain.MaxPageSize продуктов с проекцией fields и полное число совпадений.
	List(ctx context.Context, fields []string) ([]domain.Product, int64, error)
	// Get возвращает продукт по id или domain.ErrProductNotFound.
	Get(ctx context.Context, id string) (*domain.Product, error)
	Ping(ctx context.Context) error
}
