// Package integration содержит интеграционные тесты с реальной инфраструктурой:
// MongoDB, Redis, Kafka, PostgreSQL, ClickHouse. Контейнеры поднимает testcontainers.
//
// Запуск:
//
//	go test ./tests/integration/... -v
//
// Пропуск (только юнит-тесты):
//
//	go test ./... -short
package integration

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"productCatalog/tests/integration/testutil"
)

var (
	mongoContainer *testutil.MongoContainer
	redisContainer *testutil.RedisContainer
	kafkaContainer *testutil.KafkaContainer
	pgContainer    *testutil.PostgresContainer
	clickContainer *testutil.ClickHouseContainer
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// skipShort пропускает тест в -short режиме: контейнеры тогда не поднимаются.
func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

// TestMain поднимает контейнеры один раз перед всеми тестами и останавливает после.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("🚀 Поднимаем тестовые контейнеры...")
	var stops []func(context.Context) error
	must := func(name string, err error, stop func(context.Context) error) {
		if err != nil {
			for _, s := range stops {
				_ = s(ctx)
			}
			log.Fatalf("❌ Не удалось поднять %s: %v", name, err)
		}
		stops = append(stops, stop)
		log.Printf("✅ %s", name)
	}

	var err error
	mongoContainer, err = testutil.NewMongoContainer(ctx)
	must("MongoDB", err, func(ctx context.Context) error { return mongoContainer.Terminate(ctx) })
	redisContainer, err = testutil.NewRedisContainer(ctx)
	must("Redis", err, func(ctx context.Context) error { return redisContainer.Terminate(ctx) })
	kafkaContainer, err = testutil.NewKafkaContainer(ctx)
	must("Kafka", err, func(ctx context.Context) error { return kafkaContainer.Terminate(ctx) })
	pgContainer, err = testutil.NewPostgresContainer(ctx)
	must("PostgreSQL", err, func(ctx context.Context) error { return pgContainer.Terminate(ctx) })
	clickContainer, err = testutil.NewClickHouseContainer(ctx)
	must("ClickHouse", err, func(ctx context.Context) error { return clickContainer.Terminate(ctx) })

	log.Println("🧪 Запускаем тесты...")
	code := m.Run()

	log.Println("🧹 Останавливаем контейнеры...")
	for _, stop := range stops {
		if err := stop(context.Background()); err != nil {
			log.Printf("⚠️  Ошибка остановки контейнера: %v", err)
		}
	}
	os.Exit(code)
}
