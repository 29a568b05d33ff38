package domain

import "time"

// Режимы запуска генератора.
const (
	ModeBatch  = "batch"
	ModeStream = "stream"
	ModeOne    = "one"
)

// TopicResult — сколько сообщений ушло в топик и сколько отклонено.
type TopicResult struct {
	Topic  string
	Sent   int
	Failed int
}

// PublishRun — итог одного запуска генератора.
type PublishRun struct {
	ID        string
	Mode      string
	StartedAt time.Time
	Duration  time.Duration
	Topics    []TopicResult
}

// Failed возвращает суммарное число неотправленных сообщений.
func (r PublishRun) Failed() int {
	n := 0
	for _, t := range r.Topics {
		n += t.Failed
	}
	return n
}

// Sent возвращает суммарное число отправленных сообщений.
func (r PublishRun) Sent() int {
	n := 0
	for _, t := range r.Topics {
		n += t.Sent
	}
	return n
}
