package publishing

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"productCatalog/internal/domain"
)

// PublishBatches генерирует count продуктов и отправляет продукты и локализации
// двумя пачками в свои топики одновременно. Отказ одного топика не отменяет другой.
func (u *UseCase) PublishBatches(ctx context.Context, count int) domain.PublishRun {
	run := u.startRun(domain.ModeBatch)
	batch := u.gen.Generate(count)

	results := []domain.TopicResult{
		{Topic: u.cfg.ProductsTopic},
		{Topic: u.cfg.LanguagesTopic},
	}
	payloads := [][]any{toAny(batch.Products), toAny(batch.Languages)}

	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			total := len(payloads[i])
			err := u.pub.PublishBatch(ctx, results[i].Topic, payloads[i])
			failed := failedOf(err, total)
			results[i].Sent = total - failed
			results[i].Failed = failed
			return nil
		})
	}
	_ = g.Wait()

	run.Topics = results
	return u.finishRun(ctx, run)
}

// PublishEach генерирует count продуктов и отправляет каждую запись отдельным сообщением:
// сначала продукты, затем локализации. Одновременно в полёте не больше Concurrency отправок.
// ephemeral — каждое сообщение через разовое соединение, иначе через постоянное (Connect/Disconnect).
// Неудачные отправки считаются, но запуск не прерывают.
func (u *UseCase) PublishEach(ctx context.Context, count int, ephemeral bool) (domain.PublishRun, error) {
	run := u.startRun(domain.ModeStream)
	batch := u.gen.Generate(count)

	send := u.pub.PublishOneShot
	if !ephemeral {
		if err := u.pub.Connect(ctx); err != nil {
			return run, fmt.Errorf("connect publisher: %w", err)
		}
		defer func() {
			if err := u.pub.Disconnect(); err != nil {
				u.log.Warn("disconnect publisher", "error", err)
			}
		}()
		send = u.pub.PublishOne
	}

	run.Topics = []domain.TopicResult{
		u.publishEach(ctx, u.cfg.ProductsTopic, toAny(batch.Products), send),
		u.publishEach(ctx, u.cfg.LanguagesTopic, toAny(batch.Languages), send),
	}
	return u.finishRun(ctx, run), nil
}

// PublishOne генерирует один продукт и отправляет его и его локализации разовыми соединениями.
func (u *UseCase) PublishOne(ctx context.Context) domain.PublishRun {
	run := u.startRun(domain.ModeOne)
	batch := u.gen.Generate(1)

	run.Topics = []domain.TopicResult{
		u.publishEach(ctx, u.cfg.ProductsTopic, toAny(batch.Products), u.pub.PublishOneShot),
		u.publishEach(ctx, u.cfg.LanguagesTopic, toAny(batch.Languages), u.pub.PublishOneShot),
	}
	return u.finishRun(ctx, run)
}

type sendFunc func(ctx context.Context, topic string, record any) error

func (u *UseCase) publishEach(ctx context.Context, topic string, records []any, send sendFunc) domain.TopicResult {
	var sent, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(u.cfg.Concurrency)
	for _, r := range records {
		g.Go(func() error {
			if err := send(ctx, topic, r); err != nil {
				failed.Add(1)
				u.log.Debug("publish record", "topic", topic, "error", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return domain.TopicResult{Topic: topic, Sent: int(sent.Load()), Failed: int(failed.Load())}
}

func (u *UseCase) startRun(mode string) domain.PublishRun {
	return domain.PublishRun{ID: uuid.NewString(), Mode: mode, StartedAt: u.now().UTC()}
}

// finishRun фиксирует длительность, пишет итог в лог и в журнал запусков.
// Ошибка журнала не влияет на результат запуска.
func (u *UseCase) finishRun(ctx context.Context, run domain.PublishRun) domain.PublishRun {
	run.Duration = u.now().Sub(run.StartedAt)
	attrs := []any{"run_id", run.ID, "mode", run.Mode, "sent", run.Sent(), "failed", run.Failed(), "duration", run.Duration}
	for _, t := range run.Topics {
		attrs = append(attrs, t.Topic, fmt.Sprintf("%d/%d", t.Sent, t.Sent+t.Failed))
	}
	if run.Failed() > 0 {
		u.log.Warn("publish run finished with failures", attrs...)
	} else {
		u.log.Info("publish run finished", attrs...)
	}

	if u.sink != nil {
		if err := u.sink.WriteRun(ctx, run); err != nil {
			u.log.Warn("write publish run", "run_id", run.ID, "error", err)
		}
	}
	return run
}

// failedOf — сколько записей из total не ушло. Частичный приём брокером отражён в PublishError.Failed.
func failedOf(err error, total int) int {
	if err == nil {
		return 0
	}
	var perr *domain.PublishError
	if errors.As(err, &perr) && perr.Failed > 0 && perr.Failed <= total {
		return perr.Failed
	}
	return total
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

