// Package mcp provides an MCP (Model Context Protocol) server that exposes the
// fuzzy advisor as tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/inference"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/logging"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/metrics"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/ratelimit"
)

// Server wraps the MCP SDK server and the inference engine.
type Server struct {
	server       *sdk.Server
	engine       *inference.Engine
	logger       *slog.Logger
	decisions    *logging.DecisionLogger
	toolLimiters ratelimit.ToolLimiters
	registry     *prometheus.Registry
	metricsAddr  string
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "fuzzy")
	Version string // Server version

	// Inference carries the zero-strength policy. Its Logger, Decisions and
	// Metrics fields are replaced by the ones below.
	Inference inference.Options

	Logger      *slog.Logger
	Decisions   *logging.DecisionLogger
	MetricsAddr string // listen address for /metrics; empty disables it

	// Limits overrides ratelimit.DefaultLimits when non-nil.
	Limits map[string]ratelimit.Limit
}

// NewServer creates a new MCP server with the advisor tools registered.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("mcp: nil config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	limits := cfg.Limits
	if limits == nil {
		limits = ratelimit.DefaultLimits()
	}

	registry := prometheus.NewRegistry()
	opts := cfg.Inference
	opts.Logger = logger
	opts.Decisions = cfg.Decisions
	opts.Metrics = metrics.NewRecorder(registry)

	s := &Server{
		server: sdk.NewServer(&sdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		engine:       inference.NewEngine(opts),
		logger:       logger,
		decisions:    cfg.Decisions,
		toolLimiters: ratelimit.NewToolLimiters(limits),
		registry:     registry,
		metricsAddr:  cfg.MetricsAddr,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if s.metricsAddr != "" {
		stop := s.serveMetrics(s.metricsAddr)
		defer stop()
	}

	err := s.server.Run(ctx, &sdk.StdioTransport{})

	s.decisions.Close()

	return err
}

// MetricsHandler returns the Prometheus handler for this server's instruments.
func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// serveMetrics exposes /metrics on addr and returns a shutdown function.
func (s *Server) serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.MetricsHandler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	s.logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// Close releases the server's resources.
func (s *Server) Close() error {
	s.decisions.Close()
	return nil
}
