package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"productCatalog/internal/domain"
)

// encodeEnvelope проверяет конверт и раскладывает его по заголовкам сообщения.
func encodeEnvelope(env domain.Envelope) ([]kafka.Header, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return []kafka.Header{
		{Key: domain.HeaderSessionID, Value: []byte(env.SessionID)},
		{Key: domain.HeaderType, Value: []byte(env.Type)},
		{Key: domain.HeaderVersion, Value: []byte(env.Version)},
		{Key: domain.HeaderTimestamp, Value: []byte(env.Timestamp.Format(domain.TimestampLayout))},
		{Key: domain.HeaderStatus, Value: []byte(env.Status)},
		{Key: domain.HeaderSystemID, Value: []byte(env.SystemID)},
	}, nil
}

// DecodeMessage собирает конверт из заголовков и декодирует JSON-тело в out.
// Сторона потребителя: отсутствующий заголовок — ошибка domain.ErrInvalidEnvelope.
func DecodeMessage(msg kafka.Message, out any) (domain.Envelope, error) {
	var env domain.Envelope
	for _, h := range msg.Headers {
		v := string(h.Value)
		switch h.Key {
		case domain.HeaderSessionID:
			env.SessionID = v
		case domain.HeaderType:
			env.Type = v
		case domain.HeaderVersion:
			env.Version = v
		case domain.HeaderTimestamp:
			ts, err := time.Parse(domain.TimestampLayout, v)
			if err != nil {
				return env, fmt.Errorf("%w: timestamp %q: %v", domain.ErrInvalidEnvelope, v, err)
			}
			env.Timestamp = ts
		case domain.HeaderStatus:
			env.Status = v
		case domain.HeaderSystemID:
			env.SystemID = v
		}
	}
	if err := env.Validate(); err != nil {
		return env, err
	}
	if out != nil {
		if err := json.Unmarshal(msg.Value, out); err != nil {
			return env, fmt.Errorf("decode %s payload: %w", msg.Topic, err)
		}
	}
	return env, nil
}
