package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/inference"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

// maxSurfaceCells bounds the grid size of one sweep.
const maxSurfaceCells = 100_000

// axis is one inclusive sweep range.
type axis struct {
	Min, Max, Step float64
}

// count returns the number of sample points of a.
func (a axis) count() float64 {
	return math.Floor((a.Max-a.Min)/a.Step+1e-9) + 1
}

// values returns the sample points of a. The last point is Max when the
// range divides evenly.
func (a axis) values() []float64 {
	out := make([]float64, int(a.count()))
	for i := range out {
		out[i] = a.Min + float64(i)*a.Step
	}
	return out
}

func (a axis) validate(name string) error {
	if !isFinite(a.Min) || !isFinite(a.Max) || !isFinite(a.Step) {
		return fmt.Errorf("%s range must be finite", name)
	}
	if a.Step <= 0 {
		return fmt.Errorf("%s step must be positive, got %v", name, a.Step)
	}
	if a.Max < a.Min {
		return fmt.Errorf("%s max (%v) is below min (%v)", name, a.Max, a.Min)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// surfaceCell is one grid point. Action is empty when no rule fired.
type surfaceCell struct {
	Distance    float64       `json:"distance"`
	Delta       float64       `json:"delta"`
	CrispOutput *float64      `json:"crisp_output"`
	Action      models.Action `json:"action,omitempty"`
	Fallback    bool          `json:"fallback,omitempty"`
}

// sweep evaluates every (distance, delta) pair. Zero-strength cells are kept
// with a nil CrispOutput instead of stopping the sweep.
func sweep(cmd *cobra.Command, engine *inference.Engine, dist, delta axis) ([]surfaceCell, error) {
	if n := dist.count() * delta.count(); n > maxSurfaceCells {
		return nil, fmt.Errorf("grid of %.0f cells exceeds %d", n, maxSurfaceCells)
	}
	ds, vs := dist.values(), delta.values()

	cells := make([]surfaceCell, 0, len(ds)*len(vs))
	for _, d := range ds {
		for _, v := range vs {
			cell := surfaceCell{Distance: d, Delta: v}
			res, err := engine.Infer(cmd.Context(), d, v)
			switch {
			case errors.Is(err, defuzz.ErrZeroStrength):
			case err != nil:
				return nil, err
			default:
				crisp := res.CrispOutput
				cell.CrispOutput = &crisp
				cell.Action = res.Action
				cell.Fallback = res.Fallback
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

func newSurfaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Sweep a grid of inputs and print the control surface",
		Long: `Evaluate the advisor over a grid of distances and deltas.

Rows are distances, columns are deltas. Each cell shows the crisp output and
the first letters of the action; cells where no rule fired show "-".

Examples:
  fuzzy surface
  fuzzy surface --distance-min 0 --distance-max 10 --distance-step 0.5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			f := cmd.Flags()
			var dist, delta axis
			dist.Min, _ = f.GetFloat64("distance-min")
			dist.Max, _ = f.GetFloat64("distance-max")
			dist.Step, _ = f.GetFloat64("distance-step")
			delta.Min, _ = f.GetFloat64("delta-min")
			delta.Max, _ = f.GetFloat64("delta-max")
			delta.Step, _ = f.GetFloat64("delta-step")

			if err := dist.validate("distance"); err != nil {
				return err
			}
			if err := delta.validate("delta"); err != nil {
				return err
			}

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			cells, err := sweep(cmd, env.engine, dist, delta)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), cells)
			}
			printSurface(cmd.OutOrStdout(), cells, delta.values())
			return nil
		},
	}

	cmd.Flags().Float64("distance-min", 0, "Smallest distance")
	cmd.Flags().Float64("distance-max", 10, "Largest distance")
	cmd.Flags().Float64("distance-step", 1, "Distance increment")
	cmd.Flags().Float64("delta-min", -5, "Smallest delta")
	cmd.Flags().Float64("delta-max", 5, "Largest delta")
	cmd.Flags().Float64("delta-step", 1, "Delta increment")

	return cmd
}

func printSurface(w io.Writer, cells []surfaceCell, deltas []float64) {
	fmt.Fprintf(w, "%8s", "dist\\dlt")
	for _, v := range deltas {
		fmt.Fprintf(w, " %9.2f", v)
	}
	fmt.Fprintln(w)

	for i, c := range cells {
		if i%len(deltas) == 0 {
			fmt.Fprintf(w, "%8.2f", c.Distance)
		}
		if c.CrispOutput == nil {
			fmt.Fprintf(w, " %9s", "-")
		} else {
			fmt.Fprintf(w, " %6.2f %-2s", *c.CrispOutput, abbrev(c.Action))
		}
		if i%len(deltas) == len(deltas)-1 {
			fmt.Fprintln(w)
		}
	}
}

// abbrev shortens an action for the surface table.
func abbrev(a models.Action) string {
	switch a {
	case models.ActionBrakeHard:
		return "BH"
	case models.ActionSlowDown:
		return "SD"
	case models.ActionNone:
		return "N"
	case models.ActionSpeedUp:
		return "SU"
	case models.ActionFloorIt:
		return "FI"
	}
	return "?"
}
