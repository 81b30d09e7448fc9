package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/defuzz"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show every stage of one inference",
		Long: `Print the membership degrees of both inputs, the rule strengths, the
aggregated output curve and the result.

A call where no rule fires still prints the stages before reporting the error.`,
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
			if err != nil && !errors.Is(err, defuzz.ErrZeroStrength) {
				return err
			}

			if jsonOut {
				if encErr := writeJSON(cmd.OutOrStdout(), trace); encErr != nil {
					return encErr
				}
				return err
			}

			printTrace(cmd.OutOrStdout(), trace, err == nil)
			return err
		},
	}

	addInputFlags(cmd)
	return cmd
}

func printTrace(w io.Writer, trace models.Trace, withResult bool) {
	if trace.ID != "" {
		fmt.Fprintf(w, "Trace %s\n", trace.ID)
	}
	fmt.Fprintf(w, "Input: distance=%v delta=%v\n\n", trace.Input.Distance, trace.Input.Delta)

	printDegrees(w, "Distance", trace.Distance.Degrees())
	printDegrees(w, "Delta", trace.Delta.Degrees())
	printDegrees(w, "Rule strengths", trace.Strengths.Degrees())

	fmt.Fprintln(w, "Aggregated output:")
	for _, p := range trace.Curve {
		fmt.Fprintf(w, "  %6.1f  %.4f  %s\n", p.Position, p.Value, strings.Repeat("#", int(p.Value*20+0.5)))
	}
	fmt.Fprintln(w)

	if !withResult {
		return
	}
	fmt.Fprintf(w, "Crisp output: %.4f\n", trace.Result.CrispOutput)
	fmt.Fprintf(w, "Action:       %s\n", trace.Result.Action)
	if trace.Result.Fallback {
		fmt.Fprintln(w, "(no rule fired; fallback output used)")
	}
}

func printDegrees(w io.Writer, title string, degrees []models.Degree) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, d := range degrees {
		fmt.Fprintf(w, "  %-14s %.4f\n", d.Label, d.Value)
	}
	fmt.Fprintln(w)
}
