package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestHandleMessageDecodesEvent(t *testing.T) {
	var got UserRegisteredEvent
	c := NewConsumer("amqp://unused", func(ctx context.Context, ev UserRegisteredEvent) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		got = ev
		return nil
	}, discard())

	ev := UserRegisteredEvent{
		UserID:         "u1",
		UserName:       "jane",
		Email:          "jane@example.com",
		ActivationLink: "http://localhost:3001/auth/activation?code=abc",
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, c.HandleMessage(context.Background(), body))
	assert.Equal(t, ev, got)
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	called := false
	c := NewConsumer("amqp://unused", func(context.Context, UserRegisteredEvent) error {
		called = true
		return nil
	}, discard())

	assert.Error(t, c.HandleMessage(context.Background(), []byte("{not json")))
	assert.False(t, called)
}

func TestHandleMessagePropagatesHandlerError(t *testing.T) {
	boom := errors.New("smtp down")
	c := NewConsumer("amqp://unused", func(context.Context, UserRegisteredEvent) error { return boom }, discard())
	assert.ErrorIs(t, c.HandleMessage(context.Background(), []byte(`{"user_id":"u1"}`)), boom)
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	c := NewConsumer("amqp://127.0.0.1:1/", func(context.Context, UserRegisteredEvent) error { return nil }, discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}
