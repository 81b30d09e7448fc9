// Package rules combines fuzzified inputs into one firing strength per
// action using the min/max/complement operators.
package rules

import (
	"math"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// And is fuzzy conjunction (minimum).
func And(a, b float64) float64 {
	return math.Min(a, b)
}

// Or is fuzzy disjunction (maximum).
func Or(a, b float64) float64 {
	return math.Max(a, b)
}

// Not is the fuzzy complement.
func Not(a float64) float64 {
	return 1.0 - a
}

// Evaluate applies the rule table:
//
//	BrakeHard = VerySmall
//	SlowDown  = Small AND Stable
//	None      = Small AND Growing
//	SpeedUp   = Perfect AND Growing
//	FloorIt   = VeryBig AND (NOT Growing OR NOT GrowingFast)
func Evaluate(dist models.Distance, delta models.Delta) models.Strengths {
	return models.Strengths{
		BrakeHard: dist.VerySmall,
		SlowDown:  And(dist.Small, delta.Stable),
		None:      And(dist.Small, delta.Growing),
		SpeedUp:   And(dist.Perfect, delta.Growing),
		FloorIt:   And(dist.VeryBig, Or(Not(delta.Growing), Not(delta.GrowingFast))),
	}
}

// Table returns the rule table in human-readable form, in action order.
func Table() []string {
	return []string{
		"BrakeHard = Distance is VerySmall",
		"SlowDown = Distance is Small AND Delta is Stable",
		"None = Distance is Small AND Delta is Growing",
		"SpeedUp = Distance is Perfect AND Delta is Growing",
		"FloorIt = Distance is VeryBig AND (Delta is NOT Growing OR Delta is NOT GrowingFast)",
	}
}
