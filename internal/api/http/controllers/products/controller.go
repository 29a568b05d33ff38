package products

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

// Controller — чтение каталога: список и карточка продукта.
type Controller struct {
	uc  ports.ICatalogUseCase
	log *slog.Logger
}

// New создаёт контроллер продуктов.
func New(uc ports.ICatalogUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/products", c.list)
	r.GET("/products/:id", c.get)
}

// @Summary Список продуктов
// @Description До 100 неудалённых продуктов; fields — проекция через запятую. count — полное число совпадений.
// @Tags products
// @Produce json
// @Param fields query string false "Поля через запятую"
// @Success 200 {object} ListResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (c *Controller) list(ctx *gin.Context) {
	page, err := c.uc.ListProducts(ctx.Request.Context(), parseFields(ctx.Query("fields")))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	base := baseURL(ctx.Request, strings.TrimSuffix(ctx.Request.URL.Path, "/"))
	for i := range page.Products {
		if id := page.Products[i].ID; id != "" {
			page.Products[i].Href = base + "/" + id
		}
	}
	ctx.JSON(http.StatusOK, ListResponse{
		Time:     formatElapsed(page.Elapsed),
		Products: page.Products,
		Count:    page.Count,
	})
}

// @Summary Карточка продукта
// @Tags products
// @Produce json
// @Param id path string true "Идентификатор продукта"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [get]
func (c *Controller) get(ctx *gin.Context) {
	product, elapsed, err := c.uc.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	collection := path.Dir(strings.TrimSuffix(ctx.Request.URL.Path, "/"))
	product.Href = baseURL(ctx.Request, collection) + "/" + product.ID
	ctx.JSON(http.StatusOK, DetailResponse{
		Time:    formatElapsed(elapsed),
		Product: product,
	})
}

// fail переводит ошибку use case в HTTP-статус.
func (c *Controller) fail(ctx *gin.Context, err error) {
	if errors.Is(err, domain.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrProductNotFound.Error()})
		return
	}
	var qerr *domain.QueryError
	if errors.As(err, &qerr) {
		c.log.Error("catalog query failed", "op", qerr.Op, "error", qerr.Err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "catalog query failed"})
		return
	}
	c.log.Error("catalog request failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// baseURL — <scheme>://<host><collectionPath>. За прокси схема берётся из X-Forwarded-Proto.
func baseURL(r *http.Request, collectionPath string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + r.Host + collectionPath
}

// parseFields разбирает query-параметр fields ("a,b,c"). Пустой — без проекции.
func parseFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// formatElapsed — "12.34 ms".
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d.Microseconds())/1000)
}
