package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("ICT", 7*3600))

	a := NewEnvelope(now)
	b := NewEnvelope(now)

	require.NoError(t, a.Validate())
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Equal(t, MessageTypeCreate, a.Type)
	assert.Equal(t, MessageVersion, a.Version)
	assert.Equal(t, MessageStatusPending, a.Status)
	assert.Equal(t, SystemID, a.SystemID)
	assert.Equal(t, time.UTC, a.Timestamp.Location())
	assert.Equal(t, "2026-01-01T20:04:05.000Z", a.Timestamp.Format(TimestampLayout))
}

func TestEnvelope_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Envelope)
		field  string
	}{
		{name: "session id", mutate: func(e *Envelope) { e.SessionID = "" }, field: "session id"},
		{name: "type", mutate: func(e *Envelope) { e.Type = "" }, field: "message type"},
		{name: "version", mutate: func(e *Envelope) { e.Version = "" }, field: "message version"},
		{name: "timestamp", mutate: func(e *Envelope) { e.Timestamp = time.Time{} }, field: "timestamp"},
		{name: "status", mutate: func(e *Envelope) { e.Status = "" }, field: "message status"},
		{name: "system id", mutate: func(e *Envelope) { e.SystemID = "" }, field: "system id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(time.Now())
			tt.mutate(&env)

			err := env.Validate()

			require.ErrorIs(t, err, ErrInvalidEnvelope)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestPublishError(t *testing.T) {
	cause := errors.New("broker down")
	err := error(&PublishError{Topic: "create.products", Op: "batch", Attempts: 10, Failed: 3, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `publish batch to "create.products" failed after 10 attempt(s), 3 message(s) rejected: broker down`, err.Error())
}

func TestQueryError(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&QueryError{Op: "find products", Err: cause})

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query find products: timeout", err.Error())
}

func TestPublishRun_Totals(t *testing.T) {
	run := PublishRun{Topics: []TopicResult{
		{Topic: "a", Sent: 2, Failed: 1},
		{Topic: "b", Sent: 4},
	}}
	assert.Equal(t, 6, run.Sent())
	assert.Equal(t, 1, run.Failed())
}
