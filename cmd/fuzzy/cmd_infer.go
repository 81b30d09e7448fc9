package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addInputFlags registers the --distance and --delta flags on cmd.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("distance", 0, "Distance to the object ahead")
	cmd.Flags().Float64("delta", 0, "Rate of change of the distance (negative when closing in)")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("delta")
}

func inputFlags(cmd *cobra.Command) (distance, delta float64) {
	distance, _ = cmd.Flags().GetFloat64("distance")
	delta, _ = cmd.Flags().GetFloat64("delta")
	return distance, delta
}

func newInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Recommend an action for a distance and delta",
		Long: `Fuzzify the inputs, fire the rule table, aggregate the clipped action sets
and report the centroid together with the dominant action at that position.

Examples:
  fuzzy infer --distance 3 --delta 0
  fuzzy infer --distance 9 --delta 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			distance, delta := inputFlags(cmd)

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			trace, err := env.engine.Trace(cmd.Context(), distance, delta)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), newInferResult(trace.Input, trace.Result, trace.ID))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "crisp output: %.4f\n", trace.Result.CrispOutput)
			fmt.Fprintf(out, "action:       %s\n", trace.Result.Action)
			if trace.Result.Fallback {
				fmt.Fprintln(out, "(no rule fired; fallback output used)")
			}
			return nil
		},
	}

	addInputFlags(cmd)
	return cmd
}
