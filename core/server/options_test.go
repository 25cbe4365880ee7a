package server_test

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/core/server"
)

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	srv := server.New("127.0.0.1:0", server.WithLogger(log))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, testHandler())() }()

	require.Eventually(t, srv.Running, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, buf.String(), "server started in port")
	assert.Contains(t, buf.String(), "server shutdown complete")
}

func TestWithLoggerNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		srv := server.New(":0", server.WithLogger(nil))
		require.NoError(t, srv.Stop())
	})
}

func TestOptionsThreadSafety(t *testing.T) {
	t.Parallel()

	srv := server.New(":0")

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			server.WithShutdownTimeout(time.Duration(i) * time.Millisecond)(srv)
			server.WithReadTimeout(time.Second)(srv)
			server.WithWriteTimeout(time.Second)(srv)
			server.WithIdleTimeout(time.Second)(srv)
			server.WithMaxHeaderBytes(4096)(srv)
			server.WithTLS(&tls.Config{MinVersion: tls.VersionTLS12})(srv)
		}(i)
	}
	wg.Wait()

	assert.False(t, srv.Running())
}
