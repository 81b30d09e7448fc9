// Package inference runs the four-stage Mamdani pipeline:
//
//  1. Fuzzify - distance and delta become degrees in their linguistic sets.
//  2. Rules - the rule table turns those degrees into one strength per action.
//  3. Aggregate - the clipped action sets are max-combined on [-10, 10].
//  4. Defuzzify - the aggregate's centroid is the crisp output, and the
//     action dominating at that point is reported with it.
//
// Infer and Run are pure and safe for concurrent use. Engine adds logging,
// metrics and the zero-strength policy on top of them.
package inference

import (
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/fuzzify"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/rules"
)

// Infer maps a distance and its rate of change to a crisp output and the
// dominant action. It returns defuzz.ErrZeroStrength when no rule fires.
func Infer(distance, delta float64) (models.Result, error) {
	trace, err := Run(distance, delta)
	if err != nil {
		return models.Result{}, err
	}
	return trace.Result, nil
}

// Run is Infer with every intermediate value recorded. On ErrZeroStrength the
// returned trace is still filled in up to the aggregated curve.
func Run(distance, delta float64) (models.Trace, error) {
	trace := models.Trace{Input: models.Input{Distance: distance, Delta: delta}}

	trace.Distance, trace.Delta = fuzzify.Fuzzify(distance, delta)
	trace.Strengths = rules.Evaluate(trace.Distance, trace.Delta)

	values := defuzz.Aggregate(trace.Strengths)
	trace.Curve = defuzz.Curve(values)

	crisp, err := defuzz.Defuzzify(values)
	if err != nil {
		return trace, err
	}

	trace.Result = resultAt(crisp, trace.Strengths)
	return trace, nil
}

func resultAt(crisp float64, strengths models.Strengths) models.Result {
	_, action := defuzz.LargestActionAt(crisp, strengths)
	return models.Result{CrispOutput: crisp, Action: action}
}
