package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/inference"
	"github.com/HenrikKronborg/Fuzzy-Logic/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Run the advisor as an MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
fuzzy_infer, fuzzy_trace and fuzzy_sets tools.

With --metrics-addr (or metrics.addr in config) Prometheus metrics are served
on http://<addr>/metrics for the lifetime of the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			addr := env.cfg.Metrics.Addr
			if cmd.Flags().Changed("metrics-addr") {
				addr, _ = cmd.Flags().GetString("metrics-addr")
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:        "fuzzy",
				Version:     version,
				Inference:   inference.OptionsFromConfig(env.cfg),
				Logger:      env.logger,
				Decisions:   env.decisions,
				MetricsAddr: addr,
			})
			if err != nil {
				env.Close()
				return fmt.Errorf("failed to create MCP server: %w", err)
			}
			defer server.Close()

			env.logger.Info("mcp server starting", "version", version, "metrics_addr", addr)
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().String("metrics-addr", "", "Listen address for Prometheus metrics (e.g. :9102)")
	return cmd
}
