package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IPublisher — контракт отправки записей в брокер. Каждое сообщение получает конверт с заголовками.
// PublishOne работает поверх постоянного соединения (Connect/Disconnect),
// PublishBatch и PublishOneShot открывают соединение на один вызов.
type IPublisher interface {
	Connect(ctx context.Context) error
	PublishOne(ctx context.Context, topic string, record any) error
	PublishBatch(ctx context.Context, topic string, records []any) error
	PublishOneShot(ctx context.Context, topic string, record any) error
	Disconnect() error
}
