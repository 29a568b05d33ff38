// Package testutil поднимает инфраструктуру каталога в Docker для интеграционных тестов.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Endpoint — хост и проброшенный порт контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает "host:port".
func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port
}

func endpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (Endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, fmt.Errorf("host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return Endpoint{}, fmt.Errorf("port %s: %w", port, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}, nil
}

// =============================================================================
// MongoDB — хранилище каталога
// =============================================================================

// MongoContainer — MongoDB с коллекцией products.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

// NewMongoContainer поднимает MongoDB.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	ep, err := endpoint(ctx, container, "27017")
	if err != nil {
		return nil, fmt.Errorf("mongo %w", err)
	}
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Addr()
}

// =============================================================================
// Redis — кэш карточек
// =============================================================================

// RedisContainer — Redis для кэша продуктов.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

// NewRedisContainer поднимает Redis.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	ep, err := endpoint(ctx, container, "6379")
	if err != nil {
		return nil, fmt.Errorf("redis %w", err)
	}
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// =============================================================================
// Kafka — топики create.products / create.productsLanguage
// =============================================================================

// KafkaContainer — одноузловой брокер в режиме KRaft.
type KafkaContainer struct {
	*kafka.KafkaContainer
	Addrs []string
}

// NewKafkaContainer поднимает Kafka.
func NewKafkaContainer(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("catalog-test"),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka container: %w", err)
	}
	brokers, err := container.Brokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("kafka brokers: %w", err)
	}
	return &KafkaContainer{KafkaContainer: container, Addrs: brokers}, nil
}

// =============================================================================
// PostgreSQL — журнал запусков генератора
// =============================================================================

// PostgresContainer — PostgreSQL для publish_runs.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const (
		user     = "test"
		password = "test"
		dbName   = "catalog"
	)

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	ep, err := endpoint(ctx, container, "5432")
	if err != nil {
		return nil, fmt.Errorf("postgres %w", err)
	}
	return &PostgresContainer{
		PostgresContainer: container,
		Endpoint:          ep,
		User:              user,
		Password:          password,
		DBName:            dbName,
	}, nil
}

// =============================================================================
// ClickHouse — аналитика запусков генератора
// =============================================================================

// ClickHouseContainer — ClickHouse для publish_runs.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse. Порт — нативный протокол (9000).
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	const (
		user     = "default"
		password = ""
		database = "default"
	)

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	ep, err := endpoint(ctx, container, "9000")
	if err != nil {
		return nil, fmt.Errorf("clickhouse %w", err)
	}
	return &ClickHouseContainer{
		ClickHouseContainer: container,
		Endpoint:            ep,
		User:                user,
		Password:            password,
		Database:            database,
	}, nil
}
