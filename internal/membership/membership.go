// Package membership evaluates the three fuzzy set shapes used throughout the
// inference pipeline: rising edge, falling edge and triangle.
//
// Every function takes a clip value that bounds the result from above. Callers
// fuzzifying crisp inputs pass 1.0; the aggregator passes a rule strength.
package membership

import "fmt"

// Kind identifies the geometry of a membership function.
type Kind string

const (
	KindRisingEdge  Kind = "rising_edge"
	KindFallingEdge Kind = "falling_edge"
	KindTriangle    Kind = "triangle"
)

// RisingEdge is 0 up to x0, ramps linearly to 1 at x1 and stays at 1 beyond.
func RisingEdge(position, x0, x1, clip float64) float64 {
	var value float64
	switch {
	case position >= x1:
		value = 1.0
	case position <= x0:
		value = 0.0
	default:
		value = (position - x0) / (x1 - x0)
	}
	return capAt(value, clip)
}

// FallingEdge is 1 up to x0, ramps linearly to 0 at x1 and stays at 0 beyond.
func FallingEdge(position, x0, x1, clip float64) float64 {
	var value float64
	switch {
	case position <= x0:
		value = 1.0
	case position >= x1:
		value = 0.0
	default:
		value = (x1 - position) / (x1 - x0)
	}
	return capAt(value, clip)
}

// Triangle rises from x0 to a peak at x1 and falls back to zero at x2.
//
// The falling side divides by (x1 - x0), the width of the rising side, not by
// (x2 - x1). For the symmetric tables in this repository the two are equal;
// asymmetric breakpoints produce a steeper or shallower right flank.
func Triangle(position, x0, x1, x2, clip float64) float64 {
	var value float64
	if position >= x0 && position <= x1 {
		value = (position - x0) / (x1 - x0)
	} else if position >= x1 && position <= x2 {
		value = (x2 - position) / (x1 - x0)
	}
	return capAt(value, clip)
}

func capAt(value, clip float64) float64 {
	if value > clip {
		return clip
	}
	return value
}

// Shape is a membership function with its breakpoints bound.
// X2 is only meaningful for triangles.
type Shape struct {
	Kind Kind    `json:"kind" yaml:"kind"`
	X0   float64 `json:"x0" yaml:"x0"`
	X1   float64 `json:"x1" yaml:"x1"`
	X2   float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
}

// Rising returns a rising-edge shape.
func Rising(x0, x1 float64) Shape {
	return Shape{Kind: KindRisingEdge, X0: x0, X1: x1}
}

// Falling returns a falling-edge shape.
func Falling(x0, x1 float64) Shape {
	return Shape{Kind: KindFallingEdge, X0: x0, X1: x1}
}

// Tri returns a triangular shape peaking at x1.
func Tri(x0, x1, x2 float64) Shape {
	return Shape{Kind: KindTriangle, X0: x0, X1: x1, X2: x2}
}

// Eval evaluates the shape at position, capped at clip.
// A shape with an unknown kind evaluates to 0.
func (s Shape) Eval(position, clip float64) float64 {
	switch s.Kind {
	case KindRisingEdge:
		return RisingEdge(position, s.X0, s.X1, clip)
	case KindFallingEdge:
		return FallingEdge(position, s.X0, s.X1, clip)
	case KindTriangle:
		return Triangle(position, s.X0, s.X1, s.X2, clip)
	default:
		return 0
	}
}

// Peak returns the position at which the shape first reaches its maximum.
func (s Shape) Peak() float64 {
	switch s.Kind {
	case KindFallingEdge:
		return s.X0
	default:
		return s.X1
	}
}

func (s Shape) String() string {
	if s.Kind == KindTriangle {
		return fmt.Sprintf("%s(%g, %g, %g)", s.Kind, s.X0, s.X1, s.X2)
	}
	return fmt.Sprintf("%s(%g, %g)", s.Kind, s.X0, s.X1)
}
