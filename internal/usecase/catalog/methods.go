package catalog

import (
	"context"
	"errors"
	"time"

	"productCatalog/internal/domain"
)

// ListProducts — до domain.MaxPageSize неудалённых продуктов, полное число совпадений и время запроса.
func (u *UseCase) ListProducts(ctx context.Context, fields []string) (*domain.ProductPage, error) {
	start := u.now()
	products, count, err := u.repo.List(ctx, fields)
	if err != nil {
		u.log.Error("list products", "error", err)
		return nil, err
	}
	if len(products) > domain.MaxPageSize {
		products = products[:domain.MaxPageSize]
	}
	return &domain.ProductPage{
		Products: products,
		Count:    count,
		Elapsed:  u.since(start),
	}, nil
}

// GetProduct — кэш, при промахе репозиторий и заполнение кэша. Ошибки кэша только логируются.
func (u *UseCase) GetProduct(ctx context.Context, id string) (*domain.Product, time.Duration, error) {
	start := u.now()
	if u.cache != nil {
		p, found, err := u.cache.Get(ctx, id)
		if err != nil {
			u.log.Warn("cache get", "id", id, "error", err)
		} else if found {
			return p, u.since(start), nil
		}
	}

	p, err := u.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			u.log.Error("get product", "id", id, "error", err)
		}
		return nil, u.since(start), err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, *p); err != nil {
			u.log.Warn("cache set", "id", id, "error", err)
		}
	}
	return p, u.since(start), nil
}

// Ready проверяет доступность хранилища (readiness).
func (u *UseCase) Ready(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

func (u *UseCase) since(start time.Time) time.Duration {
	return u.now().Sub(start)
}
