// Package config manages environment variables.
//
// It reads variables from the process environment (optionally
// seeded from a `.env` file), loads them into structured Go
// types, and validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, godotenv loads it into
	// the process env before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator.
//
// Env vars use the PEOPLE_ prefix and "." as the nesting delimiter:
//
//	PEOPLE_SERVER.PORT   -> server.port   -> Config.Server.Port
//	PEOPLE_DATABASE.PATH -> database.path -> Config.Database.Path
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and to switch behavior based on env (local/production).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as ints and interpreted as seconds when the
// http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains SQLite connection parameters.
//
// Path is the location of the database file on disk. The schema inside it
// (the people table) is managed entirely outside this service; the service
// only reads it.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`

	// BusyTimeout is the SQLite busy handler timeout in milliseconds.
	// When a connection hits a locked database it waits up to this long
	// before the driver reports SQLITE_BUSY.
	BusyTimeout int `koanf:"busy_timeout" validate:"required"`

	// MaxOpenConns caps the database/sql pool. Each request checks out
	// one connection for the duration of its lookup.
	MaxOpenConns int `koanf:"max_open_conns" validate:"required"`
}

// New loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix PEOPLE_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Injects default observability config if missing
//
// Load or validation failures log fatally: a service with broken config
// has nothing useful to do, so it exits immediately.
func New() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider("PEOPLE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PEOPLE_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Observability is a pointer field, so nil means "missing".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment regardless of what was set,
	// so logs carry consistent service naming.
	mainConfig.Observability.ServiceName = "people-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
