package mq

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"webcars-api/config"
)

func TestPublisherWorker_ShutdownKeepsInputOpen(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop")
	}

	// A request finishing inside the HTTP shutdown drain window still
	// publishes; the buffered input channel must accept the event.
	require.NotPanics(t, func() {
		r.GetInputChan() <- Event{Id: uuid.New(), Action: ActionListingCreated}
	})
}

func TestConnect_InvalidDSN(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	err := r.Connect(context.Background(), "amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, r.conn)
}
