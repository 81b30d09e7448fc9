package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/fuzzify"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/ratelimit"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/rules"
)

// registerTools registers all advisor tools with the MCP server.
func (s *Server) registerTools() error {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "fuzzy_infer",
		Description: "Recommend a braking/throttle action from a distance and its rate of change",
	}, s.handleInfer)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "fuzzy_trace",
		Description: "Run the inference and return every stage: memberships, rule strengths, aggregated curve and result",
	}, s.handleTrace)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "fuzzy_sets",
		Description: "Describe the fixed membership shapes and rule table used by the advisor",
	}, s.handleSets)

	return nil
}

// logTool records a tool invocation at debug level.
func (s *Server) logTool(ctx context.Context, tool string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.logger.DebugContext(ctx, "tool call",
		"tool", tool,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err)
}

func (s *Server) handleInfer(ctx context.Context, req *sdk.CallToolRequest, args InferInput) (_ *sdk.CallToolResult, _ InferOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.logTool(ctx, "fuzzy_infer", start, retErr)
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "fuzzy_infer"); err != nil {
		return nil, InferOutput{}, err
	}

	trace, err := s.engine.Trace(ctx, args.Distance, args.Delta)
	if err != nil {
		return nil, InferOutput{}, fmt.Errorf("inference failed: %w", err)
	}

	return nil, toInferOutput(trace), nil
}

func (s *Server) handleTrace(ctx context.Context, req *sdk.CallToolRequest, args InferInput) (_ *sdk.CallToolResult, _ TraceOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.logTool(ctx, "fuzzy_trace", start, retErr)
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "fuzzy_trace"); err != nil {
		return nil, TraceOutput{}, err
	}

	trace, err := s.engine.Trace(ctx, args.Distance, args.Delta)
	if err != nil {
		return nil, TraceOutput{}, fmt.Errorf("inference failed: %w", err)
	}

	return nil, TraceOutput{
		TraceID:   trace.ID,
		Distance:  trace.Distance.Degrees(),
		Delta:     trace.Delta.Degrees(),
		Strengths: trace.Strengths.Degrees(),
		Curve:     trace.Curve,
		Result:    toInferOutput(trace),
	}, nil
}

func (s *Server) handleSets(ctx context.Context, req *sdk.CallToolRequest, args SetsInput) (_ *sdk.CallToolResult, _ SetsOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.logTool(ctx, "fuzzy_sets", start, retErr)
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "fuzzy_sets"); err != nil {
		return nil, SetsOutput{}, err
	}

	return nil, SetsOutput{
		Distance: fuzzify.DistanceSets(),
		Delta:    fuzzify.DeltaSets(),
		Actions:  defuzz.ActionSets(),
		Rules:    rules.Table(),
	}, nil
}

func toInferOutput(trace models.Trace) InferOutput {
	return InferOutput{
		CrispOutput: trace.Result.CrispOutput,
		Action:      string(trace.Result.Action),
		Fallback:    trace.Result.Fallback,
		TraceID:     trace.ID,
	}
}
