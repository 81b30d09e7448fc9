package mcp

import (
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/fuzzify"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// InferInput defines the input for the fuzzy_infer and fuzzy_trace tools.
type InferInput struct {
	Distance float64 `json:"distance" jsonschema:"Measured distance to the object ahead"`
	Delta    float64 `json:"delta" jsonschema:"Rate of change of the distance (negative when closing in)"`
}

// InferOutput defines the output for the fuzzy_infer tool.
type InferOutput struct {
	CrispOutput float64 `json:"crisp_output" jsonschema:"Centroid of the aggregated output on the [-10, 10] action axis"`
	Action      string  `json:"action" jsonschema:"Dominant action at the crisp output: BrakeHard, SlowDown, None, SpeedUp or FloorIt"`
	Fallback    bool    `json:"fallback,omitempty" jsonschema:"True when no rule fired and the configured fallback output was used"`
	TraceID     string  `json:"trace_id,omitempty" jsonschema:"ID of the decision log record, when decision logging is enabled"`
}

// TraceOutput defines the output for the fuzzy_trace tool.
type TraceOutput struct {
	TraceID   string              `json:"trace_id,omitempty" jsonschema:"ID of the decision log record, when decision logging is enabled"`
	Distance  []models.Degree     `json:"distance" jsonschema:"Degree of the distance in each of its sets"`
	Delta     []models.Degree     `json:"delta" jsonschema:"Degree of the delta in each of its sets"`
	Strengths []models.Degree     `json:"strengths" jsonschema:"Firing strength of the rule attached to each action"`
	Curve     []models.CurvePoint `json:"curve" jsonschema:"Aggregated output sampled at integer positions -10..10"`
	Result    InferOutput         `json:"result" jsonschema:"Crisp output and dominant action"`
}

// SetsInput defines the (empty) input for the fuzzy_sets tool.
type SetsInput struct{}

// SetsOutput defines the output for the fuzzy_sets tool.
type SetsOutput struct {
	Distance []fuzzify.Set      `json:"distance" jsonschema:"Membership shapes of the distance input"`
	Delta    []fuzzify.Set      `json:"delta" jsonschema:"Membership shapes of the delta input"`
	Actions  []defuzz.ActionSet `json:"actions" jsonschema:"Membership shapes of the output actions"`
	Rules    []string           `json:"rules" jsonschema:"Rule table in evaluation order"`
}
