package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View fuzzy configuration",
		Long: `View configuration settings.

Configuration is stored in ~/.fuzzy/config.yaml. FUZZY_* environment
variables override the file.

Examples:
  fuzzy config list                       # Show all settings
  fuzzy config list --yaml                # Show settings as config.yaml
  fuzzy config get inference.zero_strength`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			yamlOut, _ := cmd.Flags().GetBool("yaml")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				return writeJSON(out, cfg)
			case yamlOut:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				return enc.Close()
			}

			fmt.Fprintln(out, "Configuration (~/.fuzzy/config.yaml):")
			fmt.Fprintln(out)
			for _, key := range configKeys {
				value, _ := getConfigValue(cfg, key)
				fmt.Fprintf(out, "  %-26s %v\n", key+":", value)
			}
			return nil
		},
	}
	cmd.Flags().Bool("yaml", false, "Output in config.yaml format")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			value, found := getConfigValue(cfg, key)
			if !found {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
			return nil
		},
	}
}

// configKeys lists the dot-notation keys in display order.
var configKeys = []string{
	"logging.level",
	"logging.dir",
	"inference.zero_strength",
	"inference.fallback_output",
	"demo.distance",
	"demo.delta",
	"metrics.addr",
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.FuzzyConfig, key string) (any, bool) {
	switch key {
	case "logging.level":
		return cfg.Logging.Level, true
	case "logging.dir":
		return cfg.LogDir(), true
	case "inference.zero_strength":
		return cfg.Inference.ZeroStrength, true
	case "inference.fallback_output":
		return cfg.Inference.FallbackOutput, true
	case "demo.distance":
		return cfg.Demo.Distance, true
	case "demo.delta":
		return cfg.Demo.Delta, true
	case "metrics.addr":
		return cfg.Metrics.Addr, true
	default:
		return nil, false
	}
}
