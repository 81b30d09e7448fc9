package mcp

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/inference"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/logging"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/ratelimit"
)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Name == "" {
		cfg.Name = "test-server"
		cfg.Version = "v1.0.0"
	}
	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(func() { server.Close() })
	return server
}

func TestNewServer(t *testing.T) {
	server := newTestServer(t, nil)

	if server.server == nil {
		t.Error("Server.server is nil")
	}
	if server.engine == nil {
		t.Error("Server.engine is nil")
	}
	if server.logger == nil {
		t.Error("Server.logger is nil")
	}
	for tool := range ratelimit.DefaultLimits() {
		if _, ok := server.toolLimiters[tool]; !ok {
			t.Errorf("missing limiter for %s", tool)
		}
	}
}

func TestNewServer_NilConfig(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNewServer_CustomLimits(t *testing.T) {
	server := newTestServer(t, &Config{
		Limits: map[string]ratelimit.Limit{"fuzzy_infer": {Rate: 0, Burst: 1}},
	})

	if len(server.toolLimiters) != 1 {
		t.Errorf("len(toolLimiters) = %d, want 1", len(server.toolLimiters))
	}
}

func TestServer_MetricsHandler(t *testing.T) {
	server := newTestServer(t, nil)

	if _, _, err := server.handleInfer(context.Background(), nil, InferInput{Distance: 1, Delta: 1}); err != nil {
		t.Fatalf("handleInfer: %v", err)
	}

	rec := httptest.NewRecorder()
	server.MetricsHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `fuzzy_inferences_total{action="BrakeHard"} 1`) {
		t.Errorf("metrics output missing inference counter:\n%s", body)
	}
}

func TestServer_DecisionLogClosedOnClose(t *testing.T) {
	var buf bytes.Buffer
	server, err := NewServer(&Config{
		Name:      "test-server",
		Version:   "v1.0.0",
		Decisions: logging.NewDecisionWriter(&buf),
		Inference: inference.Options{},
	})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if _, _, err := server.handleInfer(context.Background(), nil, InferInput{Distance: 3, Delta: 0}); err != nil {
		t.Fatalf("handleInfer: %v", err)
	}
	server.Close()
	if _, _, err := server.handleInfer(context.Background(), nil, InferInput{Distance: 3, Delta: 0}); err != nil {
		t.Fatalf("handleInfer: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected one decision line before Close, got %d", len(lines))
	}
}
