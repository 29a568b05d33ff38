package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IProductCache = (*ProductCache)(nil)

const keyPrefix = "product:"

// ProductCache реализует ports.IProductCache: продукт в JSON под ключом product:<id> с TTL.
type ProductCache struct {
	cli redis.Cmdable
	ttl time.Duration
	log *slog.Logger
}

// NewProductCache возвращает кэш продуктов.
func NewProductCache(cli *Client, ttl time.Duration, log *slog.Logger) *ProductCache {
	return &ProductCache{cli: cli.Client, ttl: ttl, log: log}
}

func key(id string) string { return keyPrefix + id }

// Get возвращает продукт по id. Если ключа нет — found == false.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, bool, error) {
	raw, err := c.cli.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		c.log.Debug("cache get failed", "id", id, "error", err)
		return nil, false, err
	}
	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Debug("cache decode failed", "id", id, "error", err)
		return nil, false, fmt.Errorf("cache decode product: %w", err)
	}
	return &p, true, nil
}

// Set кладёт продукт в кэш на TTL. Href не кэшируется: он зависит от запроса.
func (c *ProductCache) Set(ctx context.Context, p domain.Product) error {
	p.Href = ""
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode product: %w", err)
	}
	if err := c.cli.Set(ctx, key(p.ID), raw, c.ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "id", p.ID, "error", err)
		return err
	}
	return nil
}
