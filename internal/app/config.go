package app

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apihttp "productCatalog/internal/api/http"
	"productCatalog/internal/infrastructure/click"
	"productCatalog/internal/infrastructure/kafka"
	"productCatalog/internal/infrastructure/mongo"
	"productCatalog/internal/infrastructure/pg"
	"productCatalog/internal/infrastructure/redis"
	"productCatalog/internal/usecase/publishing"
)

// Префиксы переменных окружения.
const (
	CatalogAppName   = "CATALOG"
	GeneratorAppName = "GENERATOR"
)

// Журналы запусков генератора.
const (
	SinkNone       = "none"
	SinkPostgres   = "postgres"
	SinkClickHouse = "clickhouse"
)

// CatalogConfig — конфиг HTTP-сервиса каталога. Переменные: CATALOG_*.
type CatalogConfig struct {
	LogLevel string               `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string               `envconfig:"LOG_FILE" default:""`
	Server   apihttp.ServerConfig `envconfig:"SERVER"`
	Mongo    mongo.Config         `envconfig:"MONGO"`
	Redis    redis.Config         `envconfig:"REDIS"`
}

// GeneratorConfig — конфиг генератора. Переменные: GENERATOR_*.
type GeneratorConfig struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string            `envconfig:"LOG_FILE" default:""`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	Publish    publishing.Config `envconfig:"PUBLISH"`
	Sink       string            `envconfig:"SINK" default:"none"` // none | postgres | clickhouse
	PG         pg.Config         `envconfig:"PG"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCatalogCfg загружает конфиг каталога: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCatalogCfg() (CatalogConfig, error) {
	loadDotEnv()
	var cfg CatalogConfig
	if err := envconfig.Process(CatalogAppName, &cfg); err != nil {
		return CatalogConfig{}, err
	}
	return cfg, nil
}

// LoadGeneratorCfg загружает конфиг генератора так же, как LoadCatalogCfg.
func LoadGeneratorCfg() (GeneratorConfig, error) {
	loadDotEnv()
	var cfg GeneratorConfig
	if err := envconfig.Process(GeneratorAppName, &cfg); err != nil {
		return GeneratorConfig{}, err
	}
	return cfg, nil
}

// loadDotEnv — .env необязателен, переменные окружения имеют приоритет.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config: .env не прочитан, используем окружение", "error", err)
	}
}
