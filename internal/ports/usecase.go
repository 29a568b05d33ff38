package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"time"

	"productCatalog/internal/domain"
)

// ICatalogUseCase — чтение каталога для HTTP-слоя.
type ICatalogUseCase interface {
	ListProducts(ctx context.Context, fields []string) (*domain.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, time.Duration, error)
	Ready(ctx context.Context) error
}

// IRecordGenerator — источник синтетических записей.
type IRecordGenerator interface {
	Generate(n int) domain.Batch
}
