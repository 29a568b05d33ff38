package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IPublisher = (*Publisher)(nil)

const (
	modeOne     = "one"
	modeOneShot = "oneshot"
	modeBatch   = "batch"
)

// messageWriter — то, что Publisher использует от kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type writerOptions struct {
	autoCreate bool
	batchSize  int
}

// Publisher отправляет записи в топики с конвертом в заголовках и gzip-сжатием.
// Постоянное соединение открывается Connect и закрывается Disconnect;
// PublishBatch и PublishOneShot каждый раз подключаются заново и отключаются после отправки.
type Publisher struct {
	retry     RetryConfig
	log       *slog.Logger
	now       func() time.Time
	dial      func(ctx context.Context) error
	newWriter func(opts writerOptions) messageWriter

	mu sync.RWMutex
	w  messageWriter
}

// NewPublisher создаёт издателя по конфигу. Соединение не открывается до Connect или первой разовой отправки.
func NewPublisher(cfg *Config, log *slog.Logger) *Publisher {
	c := New(cfg)
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{
		retry: c.cfg.Retry,
		log:   log,
		now:   time.Now,
		dial:  c.Ping,
		newWriter: func(opts writerOptions) messageWriter {
			return c.Writer(opts.autoCreate, opts.batchSize)
		},
	}
}

// Connect подключается к брокеру по политике ретраев и открывает постоянный writer (без автосоздания топиков).
func (p *Publisher) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.w != nil {
		return domain.ErrAlreadyConnected
	}
	attempts, err := p.retry.do(ctx, "connect", p.retry.ConnectionTimeout, p.log, p.dial)
	if err != nil {
		p.log.Error("kafka connect failed", "attempts", attempts, "error", err)
		return &domain.PublishError{Op: "connect", Attempts: attempts, Err: err}
	}
	p.w = p.newWriter(writerOptions{})
	p.log.Info("kafka publisher connected", "attempts", attempts)
	return nil
}

// Disconnect закрывает постоянный writer. Повторный вызов ничего не делает.
func (p *Publisher) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.w == nil {
		return nil
	}
	err := p.w.Close()
	p.w = nil
	if err != nil {
		return fmt.Errorf("kafka disconnect: %w", err)
	}
	p.log.Info("kafka publisher disconnected")
	return nil
}

// PublishOne отправляет одну запись через постоянное соединение.
func (p *Publisher) PublishOne(ctx context.Context, topic string, record any) error {
	msg, err := p.message(topic, record)
	if err != nil {
		return p.fail(topic, modeOne, 0, 1, err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.w == nil {
		return p.fail(topic, modeOne, 0, 1, domain.ErrNotConnected)
	}
	attempts, err := p.retry.do(ctx, "send", p.retry.RequestTimeout, p.log, func(ctx context.Context) error {
		return classifyWriteError(p.w.WriteMessages(ctx, msg), 1)
	})
	if err != nil {
		return p.fail(topic, modeOne, attempts, 1, err)
	}
	messagesTotal.WithLabelValues(topic, modeOne, resultOK).Inc()
	return nil
}

// PublishOneShot — как PublishBatch, но ровно для одной записи.
func (p *Publisher) PublishOneShot(ctx context.Context, topic string, record any) error {
	msg, err := p.message(topic, record)
	if err != nil {
		return p.fail(topic, modeOneShot, 0, 1, err)
	}
	return p.sendEphemeral(ctx, topic, modeOneShot, []kafka.Message{msg})
}

// PublishBatch подключается, отправляет все записи одним вызовом (у каждой свой конверт) и отключается.
// Брокер принимает или отклоняет запрос целиком, но при нескольких партициях приём может быть частичным:
// тогда PublishError.Failed > 0, и повторной отправки не делается.
func (p *Publisher) PublishBatch(ctx context.Context, topic string, records []any) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(records))
	for _, r := range records {
		msg, err := p.message(topic, r)
		if err != nil {
			return p.fail(topic, modeBatch, 0, len(records), err)
		}
		msgs = append(msgs, msg)
	}
	return p.sendEphemeral(ctx, topic, modeBatch, msgs)
}

func (p *Publisher) sendEphemeral(ctx context.Context, topic, mode string, msgs []kafka.Message) error {
	attempts, err := p.retry.do(ctx, "connect", p.retry.ConnectionTimeout, p.log, p.dial)
	if err != nil {
		return p.fail(topic, mode, attempts, len(msgs), fmt.Errorf("connect: %w", err))
	}

	w := p.newWriter(writerOptions{autoCreate: true, batchSize: len(msgs)})
	defer func() {
		if err := w.Close(); err != nil {
			p.log.Warn("kafka writer close", "topic", topic, "error", err)
		}
	}()

	attempts, err = p.retry.do(ctx, "send", p.retry.RequestTimeout, p.log, func(ctx context.Context) error {
		return classifyWriteError(w.WriteMessages(ctx, msgs...), len(msgs))
	})
	if err != nil {
		return p.fail(topic, mode, attempts, failedCount(err, len(msgs)), err)
	}
	messagesTotal.WithLabelValues(topic, mode, resultOK).Add(float64(len(msgs)))
	p.log.Debug("kafka messages sent", "topic", topic, "mode", mode, "count", len(msgs), "attempts", attempts)
	return nil
}

// message кодирует запись в JSON и навешивает свежий конверт.
func (p *Publisher) message(topic string, record any) (kafka.Message, error) {
	value, err := json.Marshal(record)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode record: %w", err)
	}
	headers, err := encodeEnvelope(domain.NewEnvelope(p.now()))
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Topic: topic, Value: value, Headers: headers}, nil
}

func (p *Publisher) fail(topic, mode string, attempts, failed int, err error) error {
	messagesTotal.WithLabelValues(topic, mode, resultError).Add(float64(failed))
	p.log.Warn("kafka publish failed", "topic", topic, "mode", mode, "attempts", attempts, "failed", failed, "error", err)
	return &domain.PublishError{Topic: topic, Op: mode, Attempts: attempts, Failed: failed, Err: err}
}
