package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return log
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	h := NewHub(testLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	cl := newClient(nil, h)
	require.True(t, h.add(cl))
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	h.Broadcast("dashboard", map[string]int{"total_signals": 3})

	select {
	case msg := <-cl.send:
		var envelope struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &envelope))
		assert.Equal(t, "dashboard", envelope.Type)
		assert.JSONEq(t, `{"total_signals":3}`, string(envelope.Data))
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}
}

func TestHub_ShutdownUnblocksClientHandoff(t *testing.T) {
	h := NewHub(testLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("run loop did not stop")
	}

	// Neither direction may block once the run loop is gone.
	finished := make(chan struct{})
	go func() {
		cl := newClient(nil, h)
		assert.False(t, h.add(cl), "registration after shutdown is refused")
		h.remove(cl)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("client handoff blocked after shutdown")
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	h := NewHub(testLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	cl := newClient(nil, h)
	require.True(t, h.add(cl))
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	cancel()
	<-stopped

	_, open := <-cl.send
	assert.False(t, open, "send channel closed on shutdown")
	assert.Zero(t, h.ClientCount())
}
