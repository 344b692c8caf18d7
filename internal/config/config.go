// Package config loads the CLI driver's runtime configuration: the
// GCIC variant, fuel budget, and log level. Overrides apply in the
// order flag > config file > built-in default, mirroring the YAML
// config layering used throughout this module's ecosystem.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/castcic-lang/castcic/internal/types"
)

// Config is the castcic.yaml schema plus the resolved, in-process
// runtime values a CLI invocation needs.
type Config struct {
	// Variant selects the GCIC universe-arithmetic flavor; see
	// types.Variant.
	Variant string `yaml:"variant"`

	// Fuel is the default fuel budget passed to ReduceFueled.
	Fuel int `yaml:"fuel"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration used when no YAML file is
// present and no flags override it.
func Default() Config {
	return Config{Variant: "G", Fuel: 10_000, LogLevel: "info"}
}

// Load reads and parses a castcic.yaml file, layering its fields over
// Default(). A missing path is not an error — it just means "use the
// defaults, possibly overridden by flags later".
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveVariant parses the configured variant string, defaulting to G
// on an empty string.
func (c Config) ResolveVariant() (types.Variant, error) {
	if c.Variant == "" {
		return types.VariantG, nil
	}
	return types.ParseVariant(c.Variant)
}

// ResolveFuel returns the configured fuel budget, falling back to the
// reduction core's default when unset or non-positive.
func (c Config) ResolveFuel() int {
	if c.Fuel <= 0 {
		return 10_000
	}
	return c.Fuel
}

// ResolveLogLevel parses the configured log level for use with
// slog.HandlerOptions.
func (c Config) ResolveLogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", c.LogLevel)
	}
}
