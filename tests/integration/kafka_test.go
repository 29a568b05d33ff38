package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productCatalog/internal/domain"
	"productCatalog/internal/generator"
	"productCatalog/internal/infrastructure/kafka"
	"productCatalog/internal/usecase/publishing"
)

func newPublisher(t *testing.T) *kafka.Publisher {
	t.Helper()
	return kafka.NewPublisher(&kafka.Config{
		Brokers:  strings.Join(kafkaContainer.Addrs, ","),
		ClientID: "catalog-integration",
		Retry: kafka.RetryConfig{
			RequestTimeout:    10 * time.Second,
			ConnectionTimeout: 5 * time.Second,
			Retries:           5,
			InitialRetryTime:  200 * time.Millisecond,
			Multiplier:        2,
			MaxRetryTime:      10 * time.Second,
		},
	}, newTestLogger())
}

// readAll читает из топика n сообщений с начала.
func readAll(t *testing.T, topic string, n int) []kafkago.Message {
	t.Helper()
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   kafkaContainer.Addrs,
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	msgs := make([]kafkago.Message, 0, n)
	for len(msgs) < n {
		m, err := r.ReadMessage(ctx)
		require.NoError(t, err, "прочитано %d из %d", len(msgs), n)
		msgs = append(msgs, m)
	}
	return msgs
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Сценарий: 2 продукта по 2 локализации — 2 и 4 сообщения, у каждого x-message-status: pending.
func TestPublisher_BatchScenario(t *testing.T) {
	skipShort(t)
	suffix := generator.NewID()
	productsTopic := "create.products." + suffix
	languagesTopic := "create.productsLanguage." + suffix

	uc := publishing.New(newPublisher(t), generator.New(generator.WithSeed(21)), nil, publishing.Config{
		ProductsTopic:  productsTopic,
		LanguagesTopic: languagesTopic,
		Concurrency:    2,
	}, newTestLogger())

	run := uc.PublishBatches(context.Background(), 2)
	require.Zero(t, run.Failed(), "run: %+v", run)

	products := readAll(t, productsTopic, 2)
	languages := readAll(t, languagesTopic, 4)

	sessions := map[string]bool{}
	for _, m := range append(products, languages...) {
		assert.Equal(t, "pending", header(m, "x-message-status"))
		sessions[header(m, "x-session-id")] = true
	}
	assert.Len(t, sessions, 6, "у каждого сообщения свой session id")
}

func TestPublisher_PersistentRoundTrip(t *testing.T) {
	skipShort(t)
	topic := "create.products." + generator.NewID()
	pub := newPublisher(t)
	ctx := context.Background()

	// Постоянное соединение не создаёт топики, поэтому создаём его разовой отправкой.
	product := generator.New(generator.WithSeed(33)).Generate(1).Products[0]
	require.NoError(t, pub.PublishOneShot(ctx, topic, product))

	require.NoError(t, pub.Connect(ctx))
	defer pub.Disconnect()
	require.NoError(t, pub.PublishOne(ctx, topic, product))

	msgs := readAll(t, topic, 2)
	for _, m := range msgs {
		var got domain.Product
		env, err := kafka.DecodeMessage(m, &got)
		require.NoError(t, err)
		assert.Equal(t, product, got)
		assert.Equal(t, domain.MessageTypeCreate, env.Type)
		assert.Equal(t, domain.SystemID, env.SystemID)
	}
}

func TestPublisher_UnreachableBroker(t *testing.T) {
	skipShort(t)
	pub := kafka.NewPublisher(&kafka.Config{
		Brokers: "127.0.0.1:1",
		Retry: kafka.RetryConfig{
			ConnectionTimeout: 200 * time.Millisecond,
			RequestTimeout:    200 * time.Millisecond,
			Retries:           3,
			InitialRetryTime:  10 * time.Millisecond,
			Multiplier:        2,
			MaxRetryTime:      time.Second,
		},
	}, newTestLogger())

	err := pub.PublishOneShot(context.Background(), "create.products", map[string]string{"id": "x"})

	var perr *domain.PublishError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Attempts)
}
