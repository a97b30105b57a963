package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/dnscache"

	v1 "github.com/vmunix/cinefeed/internal/api/v1"
	"github.com/vmunix/cinefeed/internal/catalog"
	"github.com/vmunix/cinefeed/internal/config"
	"github.com/vmunix/cinefeed/internal/server"
	"github.com/vmunix/cinefeed/internal/telemetry"
	"github.com/vmunix/cinefeed/internal/transport"
	"github.com/vmunix/cinefeed/pkg/omdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// gatewayConfig maps the file config onto the gateway's settings.
func gatewayConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		RequestTimeout: cfg.OMDb.Timeout,
		MovieTTL:       cfg.Cache.MovieTTL,
		SearchTTL:      cfg.Cache.SearchTTL,
		SimilarTTL:     cfg.Cache.SimilarTTL,
		ListBatch:      catalog.Batcher{Concurrency: cfg.Batch.Concurrency, Delay: cfg.Batch.Delay},
		SearchBatch:    catalog.Batcher{Concurrency: cfg.Batch.SearchConcurrency, Delay: cfg.Batch.Delay},
		SearchLimit:    cfg.Batch.SearchLimit,
		SimilarCount:   cfg.Batch.SimilarCount,
		Trending:       cfg.Lists.Trending,
		Popular:        cfg.Lists.Popular,
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	return config.Load(path)
}

func runServer(configPath string) error {
	// Load config
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Telemetry ===
	if cfg.Telemetry.TracingEndpoint != "" {
		shutdown, err := telemetry.SetupTracing(ctx, cfg.Telemetry.TracingEndpoint, cfg.Telemetry.SampleRate)
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn("tracing shutdown failed", "error", err)
			}
		}()
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.TracingEndpoint)
	}

	var (
		metrics *telemetry.Metrics
		reg     *prometheus.Registry
	)
	if cfg.Telemetry.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = telemetry.NewMetrics(reg)
	}

	// === OMDb client ===
	var resolver *dnscache.Resolver
	if cfg.DNS.Cache {
		resolver = &dnscache.Resolver{}
	}
	omdbClient := omdb.New(cfg.OMDb.APIKey,
		omdb.WithBaseURL(cfg.OMDb.BaseURL),
		omdb.WithHTTPClient(transport.NewClient(resolver, 2*cfg.OMDb.Timeout)),
		omdb.WithLogger(logger),
	)

	// === Gateway ===
	gateway := catalog.New(omdbClient, gatewayConfig(cfg), logger, catalog.WithMetrics(metrics))

	// === HTTP API ===
	deps := v1.ServerDeps{
		Gateway: gateway,
		Log:     logger,
		Metrics: metrics,
		Version: version,
	}
	if reg != nil {
		deps.Gatherer = reg
	}
	api, err := v1.New(deps)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	runner := server.NewRunner(api.Handler(), resolver, server.Config{
		Addr:               cfg.Addr(),
		ShutdownTimeout:    10 * time.Second,
		DNSRefreshInterval: cfg.DNS.RefreshInterval,
	}, logger)

	logger.Info("starting cinefeedd", "version", version, "addr", cfg.Addr())
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("cinefeedd stopped")
	return nil
}
