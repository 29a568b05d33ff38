package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"productCatalog/internal/ports"
)

const greeting = "Hello catalog"

// Controller — системные маршруты: liveness, readiness, метрики, корень API.
type Controller struct {
	uc  ports.ICatalogUseCase
	log *slog.Logger
}

// New создаёт системный контроллер.
func New(uc ports.ICatalogUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/", c.root)
	r.GET("/healthz", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) root(ctx *gin.Context) {
	ctx.String(http.StatusOK, greeting)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.uc.Ready(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
