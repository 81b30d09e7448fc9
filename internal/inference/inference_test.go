package inference

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

func TestInfer_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		distance   float64
		delta      float64
		wantOutput float64
		wantAction models.Action
	}{
		{"too close brakes hard", 1, 1, -8.416666666666666, models.ActionBrakeHard},
		{"small and stable slows down", 3, 0, -4.0, models.ActionSlowDown},
		{"small and growing holds", 3, 2, 0.0, models.ActionNone},
		{"perfect and growing speeds up", 5, 2, 4.0, models.ActionSpeedUp},
		{"very big and growing fast floors it", 9, 4, 8.416666666666666, models.ActionFloorIt},
		{"far away floors it", 100, 100, 8.416666666666666, models.ActionFloorIt},
		{"brake and slow down overlap", 2, 0, -6.0, models.ActionBrakeHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.distance, tt.delta)
			if err != nil {
				t.Fatalf("Infer(%v, %v): %v", tt.distance, tt.delta, err)
			}
			if math.Abs(got.CrispOutput-tt.wantOutput) > 1e-9 {
				t.Errorf("CrispOutput = %v, want %v", got.CrispOutput, tt.wantOutput)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.Fallback {
				t.Error("pure Infer must never report a fallback")
			}
		})
	}
}

func TestInfer_ZeroStrength(t *testing.T) {
	// Perfect distance with a stable delta fires no rule in the table.
	inputs := [][2]float64{{5, 0}, {7, 0}, {6, -5}}
	for _, in := range inputs {
		_, err := Infer(in[0], in[1])
		if !errors.Is(err, defuzz.ErrZeroStrength) {
			t.Errorf("Infer(%v, %v) err = %v, want ErrZeroStrength", in[0], in[1], err)
		}
	}
}

func TestRun_Trace(t *testing.T) {
	trace, err := Run(1, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if trace.Input != (models.Input{Distance: 1, Delta: 1}) {
		t.Errorf("Input = %+v", trace.Input)
	}
	if trace.Distance.VerySmall != 1.0 {
		t.Errorf("VerySmall = %v, want 1", trace.Distance.VerySmall)
	}
	if math.Abs(trace.Delta.Stable-1.0/3.0) > 1e-9 || math.Abs(trace.Delta.Growing-1.0/3.0) > 1e-9 {
		t.Errorf("Delta = %+v, want Stable and Growing at 1/3", trace.Delta)
	}
	if trace.Strengths != (models.Strengths{BrakeHard: 1.0}) {
		t.Errorf("Strengths = %+v", trace.Strengths)
	}
	if len(trace.Curve) != defuzz.Samples {
		t.Fatalf("len(Curve) = %d, want %d", len(trace.Curve), defuzz.Samples)
	}
	if trace.Curve[0].Position != -10 || trace.Curve[20].Position != 10 {
		t.Errorf("curve spans %v..%v, want -10..10", trace.Curve[0].Position, trace.Curve[20].Position)
	}
	if trace.Result.Action != models.ActionBrakeHard {
		t.Errorf("Action = %q", trace.Result.Action)
	}
}

func TestRun_ZeroStrengthKeepsTrace(t *testing.T) {
	trace, err := Run(5, 0)
	if !errors.Is(err, defuzz.ErrZeroStrength) {
		t.Fatalf("err = %v, want ErrZeroStrength", err)
	}
	if trace.Distance.Perfect != 1.0 || trace.Delta.Stable != 1.0 {
		t.Errorf("expected Perfect and Stable at peak, got %+v %+v", trace.Distance, trace.Delta)
	}
	if len(trace.Curve) != defuzz.Samples {
		t.Errorf("len(Curve) = %d, want %d", len(trace.Curve), defuzz.Samples)
	}
	for _, p := range trace.Curve {
		if p.Value != 0 {
			t.Errorf("curve at %v = %v, want 0", p.Position, p.Value)
		}
	}
}

func TestInfer_Deterministic(t *testing.T) {
	first, err := Infer(2.2, 0.7)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Infer(2.2, 0.7)
		if err != nil {
			t.Fatalf("Infer: %v", err)
		}
		if again != first {
			t.Fatalf("Infer not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestInfer_ConcurrentCallers(t *testing.T) {
	want, err := Infer(2, 0)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Infer(2, 0)
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestInfer_OutputWithinAxis(t *testing.T) {
	for d := 0.0; d <= 10.0; d += 0.5 {
		for v := -5.0; v <= 5.0; v += 0.5 {
			res, err := Infer(d, v)
			if errors.Is(err, defuzz.ErrZeroStrength) {
				continue
			}
			if err != nil {
				t.Fatalf("Infer(%v, %v): %v", d, v, err)
			}
			if res.CrispOutput < defuzz.MinPosition || res.CrispOutput > defuzz.MaxPosition {
				t.Errorf("Infer(%v, %v) = %v, outside the output axis", d, v, res.CrispOutput)
			}
			if !res.Action.IsValid() {
				t.Errorf("Infer(%v, %v) action %q invalid", d, v, res.Action)
			}
		}
	}
}
