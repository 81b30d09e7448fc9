package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/config"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/inference"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/logging"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuzzy",
		Short: "Fuzzy advisor - braking and throttle recommendations from distance and delta",
		Long: `fuzzy runs a Mamdani inference over a distance to the object ahead and its
rate of change, and recommends one of BrakeHard, SlowDown, None, SpeedUp or
FloorIt.

Run without a subcommand to evaluate the demo inputs from ~/.fuzzy/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			distance, delta := env.cfg.Demo.Distance, env.cfg.Demo.Delta
			res, err := env.engine.Infer(cmd.Context(), distance, delta)
			if err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), newInferResult(models.Input{Distance: distance, Delta: delta}, res, ""))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input:\n\tdistance=%v and delta=%v\n", distance, delta)
			fmt.Fprintf(out, "Centre of Gravity:\n\t%v\n", res.CrispOutput)
			fmt.Fprintf(out, "Action performed on this CoG:\n\t%s\n", res.Action)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for agent consumption)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInferCmd(),
		newTraceCmd(),
		newSurfaceCmd(),
		newConfigCmd(),
		newMCPServerCmd(),
	)

	return rootCmd
}

// env bundles what every inference command needs.
type env struct {
	cfg       *config.FuzzyConfig
	logger    *slog.Logger
	decisions *logging.DecisionLogger
	engine    *inference.Engine
}

// loadEnv loads and validates configuration and builds an engine from it.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	decisions := logging.NewDecisionLogger(cfg.LogDir(), cfg.Logging.Level)

	opts := inference.OptionsFromConfig(cfg)
	opts.Logger = logger
	opts.Decisions = decisions

	return &env{
		cfg:       cfg,
		logger:    logger,
		decisions: decisions,
		engine:    inference.NewEngine(opts),
	}, nil
}

// Close flushes the decision log.
func (e *env) Close() {
	e.decisions.Close()
}

// inferResult is the JSON shape shared by the root demo and infer.
type inferResult struct {
	Input       models.Input  `json:"input"`
	CrispOutput float64       `json:"crisp_output"`
	Action      models.Action `json:"action"`
	Fallback    bool          `json:"fallback,omitempty"`
	TraceID     string        `json:"trace_id,omitempty"`
}

func newInferResult(in models.Input, res models.Result, traceID string) inferResult {
	return inferResult{
		Input:       in,
		CrispOutput: res.CrispOutput,
		Action:      res.Action,
		Fallback:    res.Fallback,
		TraceID:     traceID,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
