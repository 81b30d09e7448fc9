// Package defuzz aggregates the clipped action sets over the output axis and
// reduces the aggregate to a crisp value by discrete centroid.
package defuzz

import (
	"errors"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/membership"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// The output axis is sampled at every integer in [MinPosition, MaxPosition].
const (
	MinPosition = -10
	MaxPosition = 10
	Samples     = MaxPosition - MinPosition + 1
)

// ErrZeroStrength is returned when the aggregated curve is zero everywhere,
// leaving the centroid undefined.
var ErrZeroStrength = errors.New("aggregated output has zero total strength")

// ActionSet is the output membership shape of one action.
type ActionSet struct {
	Action models.Action    `json:"action" yaml:"action"`
	Shape  membership.Shape `json:"shape" yaml:"shape"`
}

// ActionSets returns the output shapes in evaluation order.
func ActionSets() []ActionSet {
	return []ActionSet{
		{Action: models.ActionBrakeHard, Shape: membership.Falling(-8.0, -5.0)},
		{Action: models.ActionSlowDown, Shape: membership.Tri(-7.0, -4.0, -1.0)},
		{Action: models.ActionNone, Shape: membership.Tri(-3.0, 0.0, 3.0)},
		{Action: models.ActionSpeedUp, Shape: membership.Tri(1.0, 4.0, 7.0)},
		{Action: models.ActionFloorIt, Shape: membership.Rising(5.0, 8.0)},
	}
}

// LargestActionAt evaluates every action set at position, clipped to its rule
// strength, and returns the largest degree with its action. A later action
// must be strictly larger to win. When no action rises above zero the result
// is (0, BrakeHard).
func LargestActionAt(position float64, strengths models.Strengths) (float64, models.Action) {
	best, bestAction := 0.0, models.Action("")
	for _, set := range ActionSets() {
		v := set.Shape.Eval(position, strengths.Of(set.Action))
		if v > best {
			best, bestAction = v, set.Action
		}
	}
	if bestAction == "" {
		return 0.0, models.ActionBrakeHard
	}
	return best, bestAction
}

// Position returns the output axis position of sample i.
func Position(i int) float64 {
	return float64(MinPosition + i)
}

// Aggregate samples the pointwise maximum of the clipped action sets at every
// integer position of the output axis.
func Aggregate(strengths models.Strengths) []float64 {
	values := make([]float64, Samples)
	for i := range values {
		values[i], _ = LargestActionAt(Position(i), strengths)
	}
	return values
}

// Curve pairs aggregated values with their positions.
func Curve(values []float64) []models.CurvePoint {
	points := make([]models.CurvePoint, len(values))
	for i, v := range values {
		points[i] = models.CurvePoint{Position: Position(i), Value: v}
	}
	return points
}

// Defuzzify returns the centroid sum(x*v)/sum(v) of values, where values[i]
// is the aggregate at Position(i). It returns ErrZeroStrength if the values
// sum to zero.
func Defuzzify(values []float64) (float64, error) {
	var weighted, total float64
	for i, v := range values {
		// The explicit conversion rounds the product, so no fused
		// multiply-add changes which action wins at the centroid.
		weighted += float64(Position(i) * v)
		total += v
	}
	if total == 0 {
		return 0, ErrZeroStrength
	}
	return weighted / total, nil
}
