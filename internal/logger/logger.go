// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logging. The logger carries
// the service name and environment on every entry so log
// pipelines can filter by deployment.
package logger

import (
	"os"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application's main logger from config.
//
// Behavior:
//   - Level comes from observability config ("info" if unparseable).
//   - "console" format writes human-friendly output to stderr;
//     "json" writes machine-readable entries.
//   - Every entry is stamped with service + environment fields.
//   - Stack marshaling is enabled so Error().Stack() produces real
//     stack traces for errors created via github.com/pkg/errors.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Observability.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}
