package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("PEOPLE_PRIMARY.ENV", "test")
	t.Setenv("PEOPLE_SERVER.PORT", "8080")
	t.Setenv("PEOPLE_SERVER.READ_TIMEOUT", "10")
	t.Setenv("PEOPLE_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("PEOPLE_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("PEOPLE_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("PEOPLE_DATABASE.PATH", "./data.db")
	t.Setenv("PEOPLE_DATABASE.BUSY_TIMEOUT", "5000")
	t.Setenv("PEOPLE_DATABASE.MAX_OPEN_CONNS", "4")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "./data.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
}

func TestNew_ObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	// The observability block was absent, so defaults apply, with the
	// service name and environment forced from primary config.
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "people-api", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestNew_ObservabilityOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PEOPLE_OBSERVABILITY.SERVICE_NAME", "ignored")
	t.Setenv("PEOPLE_OBSERVABILITY.ENVIRONMENT", "ignored")
	t.Setenv("PEOPLE_OBSERVABILITY.LOGGING.LEVEL", "debug")
	t.Setenv("PEOPLE_OBSERVABILITY.LOGGING.FORMAT", "console")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)

	// Name and environment cannot be configured away.
	assert.Equal(t, "people-api", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}
