// Package config provides unified configuration loading for the fuzzy advisor.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Zero-strength policies.
const (
	// ZeroStrengthError reports an empty aggregate as an error.
	ZeroStrengthError = "error"
	// ZeroStrengthFallback answers an empty aggregate with FallbackOutput.
	ZeroStrengthFallback = "fallback"
)

// DirName is the per-user configuration directory under $HOME.
const DirName = ".fuzzy"

// FuzzyConfig contains all advisor configuration settings.
type FuzzyConfig struct {
	// Logging contains settings for operational and decision logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Inference controls how the engine treats an empty aggregate.
	Inference InferenceConfig `json:"inference" yaml:"inference"`

	// Demo holds the inputs used when the CLI runs without a subcommand.
	Demo DemoConfig `json:"demo" yaml:"demo"`

	// Metrics configures the Prometheus endpoint of the MCP server.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables inference tracing to <dir>/decisions.jsonl.
	Level string `json:"level" yaml:"level"`

	// Dir is where decisions.jsonl is written. Defaults to ~/.fuzzy.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// InferenceConfig configures the zero-strength policy.
type InferenceConfig struct {
	// ZeroStrength is "error" (default) or "fallback".
	ZeroStrength string `json:"zero_strength" yaml:"zero_strength"`

	// FallbackOutput is the crisp output reported under the "fallback" policy.
	FallbackOutput float64 `json:"fallback_output" yaml:"fallback_output"`
}

// DemoConfig holds the demonstration inputs.
type DemoConfig struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Delta    float64 `json:"delta" yaml:"delta"`
}

// MetricsConfig configures metric exposition.
type MetricsConfig struct {
	// Addr is the listen address for /metrics, e.g. ":9102". Empty disables it.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// Default returns a FuzzyConfig with sensible defaults.
func Default() *FuzzyConfig {
	return &FuzzyConfig{
		Logging: LoggingConfig{
			Level: "info",
		},
		Inference: InferenceConfig{
			ZeroStrength:   ZeroStrengthError,
			FallbackOutput: 0.0,
		},
		Demo: DemoConfig{
			Distance: 1,
			Delta:    1,
		},
	}
}

// Dir returns ~/.fuzzy, or "" if the home directory is unknown.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, DirName)
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.fuzzy/config.yaml -> environment variables
func Load() (*FuzzyConfig, error) {
	config := Default()

	if dir := Dir(); dir != "" {
		configPath := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*FuzzyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Logging.Dir = expandEnvVars(config.Logging.Dir)

	return config, nil
}

// LogDir returns the configured decision log directory, defaulting to ~/.fuzzy.
func (c *FuzzyConfig) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return Dir()
}

// Validate checks that the configuration is valid.
func (c *FuzzyConfig) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	switch c.Inference.ZeroStrength {
	case "", ZeroStrengthError, ZeroStrengthFallback:
	default:
		return fmt.Errorf("invalid zero_strength policy: %s (valid: error, fallback)", c.Inference.ZeroStrength)
	}

	if math.IsNaN(c.Inference.FallbackOutput) || math.IsInf(c.Inference.FallbackOutput, 0) {
		return fmt.Errorf("fallback_output must be finite, got %v", c.Inference.FallbackOutput)
	}

	for name, v := range map[string]float64{"demo.distance": c.Demo.Distance, "demo.delta": c.Demo.Delta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *FuzzyConfig) {
	if v := os.Getenv("FUZZY_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("FUZZY_LOG_DIR"); v != "" {
		config.Logging.Dir = v
	}

	if v := os.Getenv("FUZZY_ZERO_STRENGTH"); v != "" {
		config.Inference.ZeroStrength = v
	}

	if v := os.Getenv("FUZZY_FALLBACK_OUTPUT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Inference.FallbackOutput = f
		}
	}

	if v := os.Getenv("FUZZY_METRICS_ADDR"); v != "" {
		config.Metrics.Addr = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
