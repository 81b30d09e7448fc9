// Package models defines the values passed between the stages of the fuzzy
// inference pipeline. Every label set is closed, so each linguistic variable
// is a struct with one field per label.
package models

// Degree is a single labelled degree of membership.
type Degree struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Distance holds the degrees of the distance input in each of its sets.
type Distance struct {
	VerySmall float64 `json:"very_small" yaml:"very_small"`
	Small     float64 `json:"small" yaml:"small"`
	Perfect   float64 `json:"perfect" yaml:"perfect"`
	Big       float64 `json:"big" yaml:"big"`
	VeryBig   float64 `json:"very_big" yaml:"very_big"`
}

// Degrees returns the distance degrees in label order.
func (d Distance) Degrees() []Degree {
	return []Degree{
		{Label: "VerySmall", Value: d.VerySmall},
		{Label: "Small", Value: d.Small},
		{Label: "Perfect", Value: d.Perfect},
		{Label: "Big", Value: d.Big},
		{Label: "VeryBig", Value: d.VeryBig},
	}
}

// Delta holds the degrees of the rate-of-change input in each of its sets.
type Delta struct {
	ShrinkingFast float64 `json:"shrinking_fast" yaml:"shrinking_fast"`
	Shrinking     float64 `json:"shrinking" yaml:"shrinking"`
	Stable        float64 `json:"stable" yaml:"stable"`
	Growing       float64 `json:"growing" yaml:"growing"`
	GrowingFast   float64 `json:"growing_fast" yaml:"growing_fast"`
}

// Degrees returns the delta degrees in label order.
func (d Delta) Degrees() []Degree {
	return []Degree{
		{Label: "ShrinkingFast", Value: d.ShrinkingFast},
		{Label: "Shrinking", Value: d.Shrinking},
		{Label: "Stable", Value: d.Stable},
		{Label: "Growing", Value: d.Growing},
		{Label: "GrowingFast", Value: d.GrowingFast},
	}
}
