package models

// Result is the outcome of one inference call.
type Result struct {
	// CrispOutput is the centroid of the aggregated output curve.
	CrispOutput float64 `json:"crisp_output" yaml:"crisp_output"`

	// Action is the action with the largest clipped degree at CrispOutput.
	Action Action `json:"action" yaml:"action"`

	// Fallback is set when the aggregated curve was empty and CrispOutput
	// came from the configured fallback instead of a centroid.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// CurvePoint is one sample of the aggregated output curve.
type CurvePoint struct {
	Position float64 `json:"position" yaml:"position"`
	Value    float64 `json:"value" yaml:"value"`
}

// Trace records every intermediate value of one inference call.
type Trace struct {
	ID        string       `json:"id,omitempty" yaml:"id,omitempty"`
	Input     Input        `json:"input" yaml:"input"`
	Distance  Distance     `json:"distance" yaml:"distance"`
	Delta     Delta        `json:"delta" yaml:"delta"`
	Strengths Strengths    `json:"strengths" yaml:"strengths"`
	Curve     []CurvePoint `json:"curve" yaml:"curve"`
	Result    Result       `json:"result" yaml:"result"`
}

// Input is the pair of crisp values fed to the advisor.
type Input struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Delta    float64 `json:"delta" yaml:"delta"`
}
