package config

import "fmt"

// ObservabilityConfig groups configuration related to runtime visibility.
//
// There is no metrics or tracing pipeline in this service; this block only
// controls the structured logger. It is intended to be embedded under
// Config.Observability and can be omitted, in which case defaults apply.
type ObservabilityConfig struct {
	// ServiceName identifies this service in log output.
	// Hardcoded at load time so nobody "configures" it into chaos.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split log output by environment
	// (production, staging, local, etc.).
	Environment string `koanf:"environment" validate:"required"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Any logs below this level are ignored.
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs: "json" or "console".
	// JSON is the default so log pipelines get structured entries.
	Format string `koanf:"format" validate:"required"`
}

// DefaultObservabilityConfig returns the config used when the
// observability block is absent from the environment.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "people-api",
		Environment: "local",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate enforces constraints that validator tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	return nil
}
