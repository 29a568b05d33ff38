package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Фиксированные значения конверта сообщения.
const (
	MessageTypeCreate    = "create"
	MessageVersion       = "1.0.0"
	MessageStatusPending = "pending"
	SystemID             = "my-system"
)

// Ключи заголовков сообщения в брокере.
const (
	HeaderSessionID = "x-session-id"
	HeaderType      = "x-message-type"
	HeaderVersion   = "x-message-version"
	HeaderTimestamp = "x-message-timestamp"
	HeaderStatus    = "x-message-status"
	HeaderSystemID  = "system-id"
)

// TimestampLayout — ISO-8601 с миллисекундами, как x-message-timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope — метаданные, которые едут в заголовках каждого сообщения.
type Envelope struct {
	SessionID string
	Type      string
	Version   string
	Timestamp time.Time
	Status    string
	SystemID  string
}

// NewEnvelope собирает конверт создания записи с новым session id.
func NewEnvelope(now time.Time) Envelope {
	return Envelope{
		SessionID: uuid.NewString(),
		Type:      MessageTypeCreate,
		Version:   MessageVersion,
		Timestamp: now.UTC(),
		Status:    MessageStatusPending,
		SystemID:  SystemID,
	}
}

// Validate проверяет, что все поля конверта заполнены.
func (e Envelope) Validate() error {
	switch {
	case e.SessionID == "":
		return fmt.Errorf("%w: session id", ErrInvalidEnvelope)
	case e.Type == "":
		return fmt.Errorf("%w: message type", ErrInvalidEnvelope)
	case e.Version == "":
		return fmt.Errorf("%w: message version", ErrInvalidEnvelope)
	case e.Timestamp.IsZero():
		return fmt.Errorf("%w: timestamp", ErrInvalidEnvelope)
	case e.Status == "":
		return fmt.Errorf("%w: message status", ErrInvalidEnvelope)
	case e.SystemID == "":
		return fmt.Errorf("%w: system id", ErrInvalidEnvelope)
	}
	return nil
}
