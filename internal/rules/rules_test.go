package rules

import (
	"math"
	"testing"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/fuzzify"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

func TestOperators(t *testing.T) {
	values := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

	for _, a := range values {
		for _, b := range values {
			and := And(a, b)
			if and != math.Min(a, b) || and > 1 {
				t.Errorf("And(%v, %v) = %v", a, b, and)
			}
			if got := Or(a, b); got != math.Max(a, b) {
				t.Errorf("Or(%v, %v) = %v", a, b, got)
			}
			if And(a, b) != And(b, a) || Or(a, b) != Or(b, a) {
				t.Errorf("operators not commutative for (%v, %v)", a, b)
			}
		}
		if got := Not(Not(a)); math.Abs(got-a) > 1e-12 {
			t.Errorf("Not(Not(%v)) = %v", a, got)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		delta    float64
		want     models.Strengths
	}{
		{
			name:     "very small distance brakes hard",
			distance: 1, delta: 1,
			want: models.Strengths{BrakeHard: 1.0},
		},
		{
			name:     "small and stable slows down",
			distance: 3, delta: 0,
			want: models.Strengths{SlowDown: 1.0},
		},
		{
			name:     "small and growing holds",
			distance: 3, delta: 2,
			want: models.Strengths{None: 1.0},
		},
		{
			name:     "perfect and growing speeds up",
			distance: 5, delta: 2,
			want: models.Strengths{SpeedUp: 1.0},
		},
		{
			name:     "perfect and stable fires nothing",
			distance: 5, delta: 0,
			want: models.Strengths{},
		},
		{
			name:     "very big and growing fast floors it",
			distance: 9, delta: 4,
			want: models.Strengths{FloorIt: 1.0},
		},
		{
			name:     "very big and growing still floors it",
			distance: 9, delta: 2,
			want: models.Strengths{FloorIt: 1.0},
		},
		{
			name:     "partial overlap",
			distance: 2, delta: 0,
			want: models.Strengths{BrakeHard: 1.0 / 3.0, SlowDown: 1.0 / 3.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, delta := fuzzify.Fuzzify(tt.distance, tt.delta)
			got := Evaluate(dist, delta)
			for _, a := range models.Actions() {
				if math.Abs(got.Of(a)-tt.want.Of(a)) > 1e-9 {
					t.Errorf("Evaluate(%v, %v).%s = %v, want %v", tt.distance, tt.delta, a, got.Of(a), tt.want.Of(a))
				}
			}
		})
	}
}

func TestEvaluate_FloorItFormula(t *testing.T) {
	// Growing and GrowingFast overlap at delta = 3.0 with 1/3 each, so the
	// complement disjunction is 2/3 and caps the VeryBig degree of 1.
	dist, delta := fuzzify.Fuzzify(9.0, 3.0)
	got := Evaluate(dist, delta).FloorIt
	want := And(1.0, Or(Not(delta.Growing), Not(delta.GrowingFast)))
	if got != want {
		t.Errorf("FloorIt = %v, want %v", got, want)
	}
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("FloorIt = %v, want 2/3", got)
	}
}

func TestEvaluate_StrengthsInUnitInterval(t *testing.T) {
	for d := -2.0; d <= 12.0; d += 0.5 {
		for v := -6.0; v <= 6.0; v += 0.5 {
			s := Evaluate(fuzzify.Fuzzify(d, v))
			for _, a := range models.Actions() {
				if s.Of(a) < 0 || s.Of(a) > 1 {
					t.Fatalf("strength %s at (%v, %v) = %v", a, d, v, s.Of(a))
				}
			}
		}
	}
}
