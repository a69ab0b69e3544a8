package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds an app container over a fresh SQLite file in a
// per-test temp dir, with the people fixture schema already in place.
func newTestServer(t *testing.T) *server.Server {
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
		name TEXT,
		age INTEGER
	)`)
	require.NoError(t, err)

	return srv
}

func seedPeople(t *testing.T, srv *server.Server) {
	t.Helper()

	_, err := srv.DB.DB.Exec(
		`INSERT INTO people (id, name, age) VALUES (1, 'Alice', 30), (2, 'Bob', 41)`,
	)
	require.NoError(t, err)
}

func TestPeopleRepository_GetByID(t *testing.T) {
	srv := newTestServer(t)
	seedPeople(t, srv)

	repo := NewPeopleRepository(srv)

	person, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), person["id"])
	assert.Equal(t, "Alice", person["name"])
	assert.Equal(t, int64(30), person["age"])
	assert.Len(t, person, 3)
}

func TestPeopleRepository_GetByID_NotFound(t *testing.T) {
	srv := newTestServer(t)
	seedPeople(t, srv)

	repo := NewPeopleRepository(srv)

	person, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestPeopleRepository_GetByID_EmptyTable(t *testing.T) {
	srv := newTestServer(t)

	repo := NewPeopleRepository(srv)

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestPeopleRepository_GetByID_NullColumn(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.DB.DB.Exec(`INSERT INTO people (id, name, age) VALUES (7, NULL, NULL)`)
	require.NoError(t, err)

	repo := NewPeopleRepository(srv)

	person, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), person["id"])
	assert.Nil(t, person["name"])
	assert.Nil(t, person["age"])
}

func TestPeopleRepository_GetByID_OpaqueColumns(t *testing.T) {
	srv := newTestServer(t)

	// Columns beyond id are not known to the service; whatever the table
	// carries must pass through keyed by column name.
	_, err := srv.DB.DB.Exec(`ALTER TABLE people ADD COLUMN email TEXT`)
	require.NoError(t, err)
	_, err = srv.DB.DB.Exec(
		`INSERT INTO people (id, name, age, email) VALUES (3, 'Carol', 28, 'carol@example.com')`,
	)
	require.NoError(t, err)

	repo := NewPeopleRepository(srv)

	person, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "carol@example.com", person["email"])
	assert.Len(t, person, 4)
}

func TestPeopleRepository_GetByID_Idempotent(t *testing.T) {
	srv := newTestServer(t)
	seedPeople(t, srv)

	repo := NewPeopleRepository(srv)

	first, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)

	second, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPeopleRepository_GetByID_MissingTable(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.DB.DB.Exec(`DROP TABLE people`)
	require.NoError(t, err)

	repo := NewPeopleRepository(srv)

	_, err = repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}

func TestPeopleRepository_GetByID_CanceledContext(t *testing.T) {
	srv := newTestServer(t)
	seedPeople(t, srv)

	repo := NewPeopleRepository(srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetByID(ctx, 1)
	require.Error(t, err)

	// The connection checked out for the canceled call must have been
	// released; a fresh lookup still works.
	person, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", person["name"])
}
