package kafka

import (
	"context"
	"errors"
	"testing"

	"dueday/config"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafkaGo.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	if w.err != nil {
		return w.err
	}

	w.written = append(w.written, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

type payload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestSendMessages(t *testing.T) {
	tests := []struct {
		name     string
		writeErr error
		messages []Message
		wantErr  bool
		wantLen  int
	}{
		{
			name:     "keyed messages carry topic",
			messages: []Message{{Key: "1", Value: payload{ID: 1, Title: "Pay rent"}}, {Key: "2", Value: payload{ID: 2}}},
			wantLen:  2,
		},
		{
			name:     "unmarshalable value",
			messages: []Message{{Key: "1", Value: make(chan int)}},
			wantErr:  true,
		},
		{
			name:     "writer failure",
			writeErr: errors.New("broker down"),
			messages: []Message{{Key: "1", Value: payload{ID: 1}}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeWriter{err: tt.writeErr}
			client := newClient(writer)

			err := client.SendMessages(context.Background(), "todo-notifications", tt.messages...)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, writer.written, tt.wantLen)
			assert.Equal(t, "todo-notifications", writer.written[0].Topic)
			assert.Equal(t, "1", string(writer.written[0].Key))

			decoded, err := DecodeValue[payload](writer.written[0])
			require.NoError(t, err)
			assert.Equal(t, "Pay rent", decoded.Title)
		})
	}
}

func TestNew_RequiresBrokers(t *testing.T) {
	_, err := New(&config.Config{})

	assert.ErrorIs(t, err, ErrNoBrokers)
}

func TestClose(t *testing.T) {
	writer := &fakeWriter{}

	require.NoError(t, newClient(writer).Close())
	assert.True(t, writer.closed)
}
