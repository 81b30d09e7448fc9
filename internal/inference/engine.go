package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/config"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/logging"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/metrics"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// ErrInvalidInput is returned for NaN or infinite inputs.
var ErrInvalidInput = errors.New("input must be a finite number")

// Options configures an Engine. The zero value reports zero strength as an
// error and logs nothing.
type Options struct {
	// Fallback enables answering an empty aggregate with FallbackOutput.
	Fallback       bool
	FallbackOutput float64

	Logger    *slog.Logger
	Decisions *logging.DecisionLogger
	Metrics   *metrics.Recorder
}

// OptionsFromConfig maps the inference section of cfg onto Options.
func OptionsFromConfig(cfg *config.FuzzyConfig) Options {
	return Options{
		Fallback:       cfg.Inference.ZeroStrength == config.ZeroStrengthFallback,
		FallbackOutput: cfg.Inference.FallbackOutput,
	}
}

// Engine wraps the pure pipeline with observability and the zero-strength
// policy. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{opts: opts, logger: logger}
}

// Infer runs the pipeline and returns the result.
func (e *Engine) Infer(ctx context.Context, distance, delta float64) (models.Result, error) {
	trace, err := e.Trace(ctx, distance, delta)
	if err != nil {
		return models.Result{}, err
	}
	return trace.Result, nil
}

// Trace runs the pipeline and returns every intermediate value. The trace ID
// is set when decision logging is enabled.
func (e *Engine) Trace(ctx context.Context, distance, delta float64) (models.Trace, error) {
	if !finite(distance) || !finite(delta) {
		return models.Trace{}, fmt.Errorf("distance=%v delta=%v: %w", distance, delta, ErrInvalidInput)
	}

	trace, err := Run(distance, delta)
	if errors.Is(err, defuzz.ErrZeroStrength) {
		e.opts.Metrics.ObserveZeroStrength()
		if !e.opts.Fallback {
			e.logger.WarnContext(ctx, "no rule fired", "distance", distance, "delta", delta)
			trace.ID = e.record(trace, err)
			return trace, fmt.Errorf("distance=%v delta=%v: %w", distance, delta, err)
		}
		trace.Result = resultAt(e.opts.FallbackOutput, trace.Strengths)
		trace.Result.Fallback = true
		e.logger.InfoContext(ctx, "no rule fired, using fallback output",
			"distance", distance, "delta", delta, "crisp_output", trace.Result.CrispOutput)
	} else if err != nil {
		return trace, err
	}

	e.opts.Metrics.ObserveResult(trace.Result)
	e.logger.DebugContext(ctx, "inference",
		"distance", distance,
		"delta", delta,
		"crisp_output", trace.Result.CrispOutput,
		"action", trace.Result.Action)
	if e.logger.Enabled(ctx, logging.LevelTrace) {
		e.logger.Log(ctx, logging.LevelTrace, "inference stages",
			"distance_degrees", trace.Distance,
			"delta_degrees", trace.Delta,
			"strengths", trace.Strengths,
			"curve", curveValues(trace.Curve))
	}
	trace.ID = e.record(trace, nil)
	return trace, nil
}

// record writes one decision log line and returns its ID.
func (e *Engine) record(trace models.Trace, err error) string {
	if e.opts.Decisions == nil {
		return ""
	}
	event := map[string]any{
		"event":     "inference",
		"distance":  trace.Input.Distance,
		"delta":     trace.Input.Delta,
		"strengths": trace.Strengths,
	}
	if err != nil {
		event["error"] = err.Error()
	} else {
		event["crisp_output"] = trace.Result.CrispOutput
		event["action"] = trace.Result.Action
		if trace.Result.Fallback {
			event["fallback"] = true
		}
	}
	return e.opts.Decisions.Log(event)
}

func curveValues(curve []models.CurvePoint) []float64 {
	out := make([]float64, len(curve))
	for i, p := range curve {
		out[i] = p.Value
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
