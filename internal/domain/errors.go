package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound — нет неудалённого продукта с таким id.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotConnected — постоянное соединение с брокером не открыто.
	ErrNotConnected = errors.New("publisher not connected")
	// ErrAlreadyConnected — Connect вызван повторно без Disconnect.
	ErrAlreadyConnected = errors.New("publisher already connected")
	// ErrInvalidEnvelope — в конверте сообщения не хватает обязательного поля.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

// PublishError — отказ брокера при подключении или отправке после исчерпания ретраев.
// Failed — сколько сообщений не принято; меньше размера пачки, если брокер принял её частично.
type PublishError struct {
	Topic    string
	Op       string
	Attempts int
	Failed   int
	Err      error
}

func (e *PublishError) Error() string {
	msg := fmt.Sprintf("publish %s to %q failed after %d attempt(s)", e.Op, e.Topic, e.Attempts)
	if e.Failed > 0 {
		msg += fmt.Sprintf(", %d message(s) rejected", e.Failed)
	}
	return msg + ": " + e.Err.Error()
}

func (e *PublishError) Unwrap() error { return e.Err }

// QueryError — ошибка хранилища документов при чтении каталога.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return "query " + e.Op + ": " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }
