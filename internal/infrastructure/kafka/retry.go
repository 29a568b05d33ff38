package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// newBackOff строит экспоненциальный backoff без джиттера: InitialRetryTime * Multiplier^n.
// MaxElapsedTime не даёт суммарному ожиданию выйти за MaxRetryTime, WithMaxRetries ограничивает число попыток.
func (r RetryConfig) newBackOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.InitialRetryTime
	bo.RandomizationFactor = 0
	bo.Multiplier = r.Multiplier
	bo.MaxInterval = r.MaxRetryTime
	bo.MaxElapsedTime = r.MaxRetryTime
	bo.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.Retries-1)), ctx)
}

// do выполняет fn по политике ретраев, каждая попытка ограничена timeout.
// Возвращает число сделанных попыток и последнюю ошибку.
func (r RetryConfig) do(ctx context.Context, op string, timeout time.Duration, log *slog.Logger, fn func(ctx context.Context) error) (int, error) {
	attempts := 0
	operation := func() error {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return fn(attemptCtx)
	}
	notify := func(err error, delay time.Duration) {
		retriesTotal.WithLabelValues(op).Inc()
		log.Warn("kafka retry", "op", op, "attempt", attempts, "delay", delay, "error", err)
	}
	err := backoff.RetryNotify(operation, r.newBackOff(ctx), notify)
	return attempts, err
}

// classifyWriteError помечает ошибки, которые нельзя ретраить.
// Частично принятую пачку не повторяем: принятые сообщения продублировались бы.
func classifyWriteError(err error, total int) error {
	if err == nil {
		return nil
	}
	var werr kafka.WriteErrors
	if errors.As(err, &werr) && werr.Count() < total {
		return backoff.Permanent(err)
	}
	var kerr kafka.Error
	if errors.As(err, &kerr) && !kerr.Temporary() {
		return backoff.Permanent(err)
	}
	return err
}

// failedCount — сколько сообщений из total брокер не принял.
func failedCount(err error, total int) int {
	var werr kafka.WriteErrors
	if errors.As(err, &werr) {
		return werr.Count()
	}
	return total
}
