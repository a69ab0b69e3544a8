package service

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *PeopleService {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Path:         filepath.Join(t.TempDir(), "people.db"),
			BusyTimeout:  5000,
			MaxOpenConns: 4,
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.DB.Close() })

	_, err = srv.DB.DB.Exec(`CREATE TABLE people (
		id INTEGER PRIMARY KEY,
		name TEXT
	)`)
	require.NoError(t, err)

	_, err = srv.DB.DB.Exec(`INSERT INTO people (id, name) VALUES (1, 'Alice')`)
	require.NoError(t, err)

	repos := repository.NewRepositories(srv)
	return NewPeopleService(srv, repos.People)
}

func TestPeopleService_GetPerson(t *testing.T) {
	people := newTestService(t)

	person, err := people.GetPerson(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), person["id"])
	assert.Equal(t, "Alice", person["name"])
}

func TestPeopleService_GetPerson_NotFound(t *testing.T) {
	people := newTestService(t)

	person, err := people.GetPerson(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, person)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	// The client-facing message embeds the requested id verbatim.
	assert.Equal(t, "Person with id 999 not found", httpErr.Message)
}

func TestPeopleService_GetPerson_NegativeID(t *testing.T) {
	people := newTestService(t)

	// Any integer is a legal lookup key; absence is still a clean 404.
	_, err := people.GetPerson(context.Background(), -5)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Person with id -5 not found", httpErr.Message)
}
