package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/dnscache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(http.NotFoundHandler(), nil, Config{}, nil)
	assert.Equal(t, 10*time.Second, r.config.ShutdownTimeout)
	assert.NotNil(t, r.logger)
}

func TestRunner_ServesUntilCanceled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r := NewRunner(handler, &dnscache.Resolver{}, Config{
		Addr:               ln.Addr().String(),
		ShutdownTimeout:    time.Second,
		DNSRefreshInterval: 10 * time.Millisecond,
	}, testLogger())
	r.listen = func(string, string) (net.Listener, error) { return ln, nil }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	r := NewRunner(http.NotFoundHandler(), nil, Config{Addr: ln.Addr().String()}, testLogger())
	err = r.Run(context.Background())
	assert.Error(t, err)
}
