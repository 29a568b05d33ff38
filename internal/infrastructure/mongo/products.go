package mongo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IProductRepository = (*ProductRepo)(nil)

// ProductRepo реализует ports.IProductRepository поверх коллекции products.
type ProductRepo struct {
	client *Client
	log    *slog.Logger
}

// NewProductRepo возвращает репозиторий продуктов.
func NewProductRepo(client *Client, log *slog.Logger) *ProductRepo {
	return &ProductRepo{client: client, log: log}
}

// notDeleted совпадает и с deleteDate: null, и с отсутствующим полем.
func notDeleted() bson.D {
	return bson.D{{Key: "deleteDate", Value: nil}}
}

// List возвращает не больше domain.MaxPageSize неудалённых продуктов и полное число совпадений.
// fields — список полей для проекции; пустой — без ограничений (кроме _id).
func (r *ProductRepo) List(ctx context.Context, fields []string) ([]domain.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.client.cfg.QueryTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(buildProjection(fields)).
		SetLimit(domain.MaxPageSize)
	cursor, err := r.client.Coll().Find(ctx, notDeleted(), opts)
	if err != nil {
		r.log.Debug("List find failed", "error", err)
		return nil, 0, &domain.QueryError{Op: "find products", Err: err}
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, &domain.QueryError{Op: "decode products", Err: err}
	}

	count, err := r.client.Coll().CountDocuments(ctx, notDeleted())
	if err != nil {
		r.log.Debug("List count failed", "error", err)
		return nil, 0, &domain.QueryError{Op: "count products", Err: err}
	}
	return products, count, nil
}

// Get возвращает неудалённый продукт по id или domain.ErrProductNotFound.
func (r *ProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.client.cfg.QueryTimeout)
	defer cancel()

	filter := bson.D{{Key: "id", Value: id}, {Key: "deleteDate", Value: nil}}
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}})

	var p domain.Product
	err := r.client.Coll().FindOne(ctx, filter, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		r.log.Debug("Get failed", "id", id, "error", err)
		return nil, &domain.QueryError{Op: "find product", Err: err}
	}
	return &p, nil
}

// Ping проверяет доступность БД.
func (r *ProductRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// buildProjection превращает список полей в проекцию. _id исключается всегда;
// при ограничении полей id добавляется, чтобы можно было собрать href.
func buildProjection(fields []string) bson.D {
	proj := bson.D{{Key: "_id", Value: 0}}
	seen := map[string]bool{}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "_id" || strings.HasPrefix(f, "$") || strings.HasPrefix(f, "_id.") || seen[f] {
			continue
		}
		seen[f] = true
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	if len(proj) > 1 && !seen["id"] {
		proj = append(proj, bson.E{Key: "id", Value: 1})
	}
	return proj
}

