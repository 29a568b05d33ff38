package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// RetryConfig — политика ретраев и таймаутов. Переменные: GENERATOR_KAFKA_RETRY_*.
type RetryConfig struct {
	RequestTimeout    time.Duration `split_words:"true" default:"55s"`
	ConnectionTimeout time.Duration `split_words:"true" default:"55s"`
	Retries           int           `split_words:"true" default:"10"` // максимум попыток, включая первую
	InitialRetryTime  time.Duration `split_words:"true" default:"300ms"`
	Multiplier        float64       `split_words:"true" default:"4"`
	MaxRetryTime      time.Duration `split_words:"true" default:"55s"` // потолок суммарного ожидания между попытками
}

// withDefaults заполняет нулевые поля теми же значениями, что и envconfig.
func (r RetryConfig) withDefaults() RetryConfig {
	if r.RequestTimeout <= 0 {
		r.RequestTimeout = 55 * time.Second
	}
	if r.ConnectionTimeout <= 0 {
		r.ConnectionTimeout = 55 * time.Second
	}
	if r.Retries <= 0 {
		r.Retries = 1
	}
	if r.InitialRetryTime <= 0 {
		r.InitialRetryTime = 300 * time.Millisecond
	}
	if r.Multiplier < 1 {
		r.Multiplier = 4
	}
	if r.MaxRetryTime <= 0 {
		r.MaxRetryTime = 55 * time.Second
	}
	return r
}

// Config — настройки Kafka. Переменные: GENERATOR_KAFKA_BROKERS, GENERATOR_KAFKA_CLIENT_ID, GENERATOR_KAFKA_RETRY_*.
type Config struct {
	Brokers  string      `split_words:"true" default:"localhost:9092"` // через запятую, если несколько
	ClientID string      `split_words:"true" default:"users-service"`
	Retry    RetryConfig `split_words:"true"`
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"localhost:9092"}
	}
	return out
}

// Client — конфиг и фабрика writer-ов. Сетевые соединения открываются в Ping и при первой записи.
type Client struct {
	cfg Config
}

// New создаёт клиент по конфигу.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	c.Retry = c.Retry.withDefaults()
	if c.ClientID == "" {
		c.ClientID = "users-service"
	}
	return &Client{cfg: c}
}

// Ping подключается к первому доступному брокеру и запрашивает метаданные кластера.
func (c *Client) Ping(ctx context.Context) error {
	d := &kafka.Dialer{ClientID: c.cfg.ClientID, Timeout: c.cfg.Retry.ConnectionTimeout}
	var errs []error
	for _, addr := range c.cfg.brokersSlice() {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = conn.Brokers()
		_ = conn.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", addr, err))
	}
	return fmt.Errorf("no reachable broker: %w", errors.Join(errs...))
}

// Writer создаёт writer с gzip-сжатием. Топик задаётся в каждом сообщении.
// batchSize > 0 задаёт размер пачки, чтобы весь вызов ушёл одним запросом.
func (c *Client) Writer(autoCreate bool, batchSize int) *kafka.Writer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Balancer:               &kafka.LeastBytes{},
		MaxAttempts:            1,
		BatchTimeout:           10 * time.Millisecond,
		ReadTimeout:            c.cfg.Retry.RequestTimeout,
		WriteTimeout:           c.cfg.Retry.RequestTimeout,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Gzip,
		AllowAutoTopicCreation: autoCreate,
		Transport: &kafka.Transport{
			ClientID:    c.cfg.ClientID,
			DialTimeout: c.cfg.Retry.ConnectionTimeout,
		},
	}
	if batchSize > 0 {
		w.BatchSize = batchSize
	}
	return w
}
