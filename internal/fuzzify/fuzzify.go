// Package fuzzify converts the two crisp advisor inputs into degrees of
// membership in their linguistic sets.
package fuzzify

import (
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/membership"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// Set is a labelled membership shape.
type Set struct {
	Label string           `json:"label" yaml:"label"`
	Shape membership.Shape `json:"shape" yaml:"shape"`
}

// Distance sets.
var (
	verySmall = membership.Falling(1.0, 2.5)
	small     = membership.Tri(1.5, 3.0, 4.5)
	perfect   = membership.Tri(3.5, 5.0, 6.5)
	big       = membership.Tri(5.5, 7.0, 8.5)
	veryBig   = membership.Rising(7.5, 9.0)
)

// Delta sets.
var (
	shrinkingFast = membership.Falling(-4.0, -2.5)
	shrinking     = membership.Tri(-3.5, -2.0, -0.5)
	stable        = membership.Tri(-1.5, 0.0, 1.5)
	growing       = membership.Tri(0.5, 2.0, 3.5)
	growingFast   = membership.Rising(2.5, 4.0)
)

// DistanceSets returns the distance sets in label order.
func DistanceSets() []Set {
	return []Set{
		{Label: "VerySmall", Shape: verySmall},
		{Label: "Small", Shape: small},
		{Label: "Perfect", Shape: perfect},
		{Label: "Big", Shape: big},
		{Label: "VeryBig", Shape: veryBig},
	}
}

// DeltaSets returns the delta sets in label order.
func DeltaSets() []Set {
	return []Set{
		{Label: "ShrinkingFast", Shape: shrinkingFast},
		{Label: "Shrinking", Shape: shrinking},
		{Label: "Stable", Shape: stable},
		{Label: "Growing", Shape: growing},
		{Label: "GrowingFast", Shape: growingFast},
	}
}

// Fuzzify evaluates distance and delta against their five sets each.
// Inputs are not clipped, so every degree lies in [0, 1].
func Fuzzify(distance, delta float64) (models.Distance, models.Delta) {
	return FuzzifyDistance(distance), FuzzifyDelta(delta)
}

// FuzzifyDistance evaluates a crisp distance.
func FuzzifyDistance(distance float64) models.Distance {
	return models.Distance{
		VerySmall: verySmall.Eval(distance, 1.0),
		Small:     small.Eval(distance, 1.0),
		Perfect:   perfect.Eval(distance, 1.0),
		Big:       big.Eval(distance, 1.0),
		VeryBig:   veryBig.Eval(distance, 1.0),
	}
}

// FuzzifyDelta evaluates a crisp rate of change of the distance.
func FuzzifyDelta(delta float64) models.Delta {
	return models.Delta{
		ShrinkingFast: shrinkingFast.Eval(delta, 1.0),
		Shrinking:     shrinking.Eval(delta, 1.0),
		Stable:        stable.Eval(delta, 1.0),
		Growing:       growing.Eval(delta, 1.0),
		GrowingFast:   growingFast.Eval(delta, 1.0),
	}
}
