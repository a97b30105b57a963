// Package server runs the daemon's long-lived components.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/cinefeed/internal/transport"
)

// Config for the runner.
type Config struct {
	Addr               string
	ShutdownTimeout    time.Duration
	DNSRefreshInterval time.Duration
}

// Runner manages the HTTP server and background loops.
type Runner struct {
	handler  http.Handler
	resolver *dnscache.Resolver
	config   Config
	logger   *slog.Logger

	// listen is replaced in tests.
	listen func(network, addr string) (net.Listener, error)
}

// NewRunner creates a new runner. resolver may be nil when DNS caching is off.
func NewRunner(handler http.Handler, resolver *dnscache.Resolver, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Runner{
		handler:  handler,
		resolver: resolver,
		config:   cfg,
		logger:   logger.With("component", "server"),
		listen:   net.Listen,
	}
}

// Run starts all components.
// It blocks until the context is canceled or a component fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := r.listen("tcp", r.config.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	// Use errgroup to manage component lifecycle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return transport.RefreshLoop(gctx, r.resolver, r.config.DNSRefreshInterval, r.logger)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), r.config.ShutdownTimeout)
		defer cancel()
		r.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
