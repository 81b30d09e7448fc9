package models

// Action is an output recommendation of the advisor.
type Action string

const (
	ActionBrakeHard Action = "BrakeHard"
	ActionSlowDown  Action = "SlowDown"
	ActionNone      Action = "None"
	ActionSpeedUp   Action = "SpeedUp"
	ActionFloorIt   Action = "FloorIt"
)

// Actions lists every action in evaluation order. Ties during aggregation
// keep the earliest entry.
func Actions() []Action {
	return []Action{ActionBrakeHard, ActionSlowDown, ActionNone, ActionSpeedUp, ActionFloorIt}
}

// IsValid reports whether a is one of the five known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionBrakeHard, ActionSlowDown, ActionNone, ActionSpeedUp, ActionFloorIt:
		return true
	}
	return false
}

// Strengths holds the firing strength of the rule attached to each action.
type Strengths struct {
	BrakeHard float64 `json:"brake_hard" yaml:"brake_hard"`
	SlowDown  float64 `json:"slow_down" yaml:"slow_down"`
	None      float64 `json:"none" yaml:"none"`
	SpeedUp   float64 `json:"speed_up" yaml:"speed_up"`
	FloorIt   float64 `json:"floor_it" yaml:"floor_it"`
}

// Of returns the strength for a. Unknown actions have zero strength.
func (s Strengths) Of(a Action) float64 {
	switch a {
	case ActionBrakeHard:
		return s.BrakeHard
	case ActionSlowDown:
		return s.SlowDown
	case ActionNone:
		return s.None
	case ActionSpeedUp:
		return s.SpeedUp
	case ActionFloorIt:
		return s.FloorIt
	}
	return 0
}

// Total returns the sum of all rule strengths.
func (s Strengths) Total() float64 {
	return s.BrakeHard + s.SlowDown + s.None + s.SpeedUp + s.FloorIt
}

// Degrees returns the strengths as labelled degrees in evaluation order.
func (s Strengths) Degrees() []Degree {
	out := make([]Degree, 0, 5)
	for _, a := range Actions() {
		out = append(out, Degree{Label: string(a), Value: s.Of(a)})
	}
	return out
}
