package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

func TestRecorder_ObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveResult(models.Result{CrispOutput: -8.4, Action: models.ActionBrakeHard})
	r.ObserveResult(models.Result{CrispOutput: -8.4, Action: models.ActionBrakeHard})
	r.ObserveResult(models.Result{CrispOutput: 4, Action: models.ActionSpeedUp})

	if got := testutil.ToFloat64(r.inferences.WithLabelValues("BrakeHard")); got != 2 {
		t.Errorf("BrakeHard inferences = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.inferences.WithLabelValues("SpeedUp")); got != 1 {
		t.Errorf("SpeedUp inferences = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.crispOutput); got != 1 {
		t.Errorf("crisp output histogram series = %d, want 1", got)
	}
	if got := testutil.ToFloat64(r.fallbacks); got != 0 {
		t.Errorf("fallbacks = %v, want 0", got)
	}
}

func TestRecorder_Fallback(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.ObserveZeroStrength()
	r.ObserveResult(models.Result{CrispOutput: 0, Action: models.ActionBrakeHard, Fallback: true})

	if got := testutil.ToFloat64(r.zeroStrength); got != 1 {
		t.Errorf("zero strength = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.fallbacks); got != 1 {
		t.Errorf("fallbacks = %v, want 1", got)
	}
}

func TestRecorder_Registration(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.ObserveResult(models.Result{CrispOutput: 0, Action: models.ActionNone})
	r.ObserveZeroStrength()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{InferencesN, ZeroStrengthN, CrispOutputN} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestRecorder_NilSafety(t *testing.T) {
	var r *Recorder
	r.ObserveResult(models.Result{Action: models.ActionNone})
	r.ObserveZeroStrength()
}
