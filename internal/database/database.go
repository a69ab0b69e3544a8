// Package database contains the logic for opening the SQLite
// database file the service reads from.
//
// The store is a single file on disk whose schema and contents are
// managed entirely outside this service. This package only:
//   - opens the file through database/sql with the pure-Go driver
//   - applies connection pragmas (busy timeout)
//   - bounds the connection pool from config
//   - pings with a timeout so startup fails fast when the file is bad
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Database wraps the sql.DB pool and a logger.
// It provides a simple object you can pass around the app.
//
// DB is the shared handle; each lookup checks a single connection out of
// it for the duration of the call. log is used for lifecycle logs.
type Database struct {
	DB  *sql.DB
	log *zerolog.Logger
}

// DatabasePingTimeout defines the number of seconds to wait for the
// startup ping before considering the database unusable.
const DatabasePingTimeout = 10

// New opens the SQLite database file and verifies it is reachable.
//
// Behavior:
//   - Build a DSN carrying the busy-timeout pragma
//   - Open via database/sql (lazy; no file access yet)
//   - Bound the pool from config
//   - Ping with a timeout, so startup fails fast on a missing or
//     unreadable file
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	// The driver accepts pragmas as DSN query parameters.
	// _pragma=busy_timeout makes readers wait for writers instead of
	// failing immediately with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?%s", cfg.Database.Path, url.Values{
		"_pragma": []string{fmt.Sprintf("busy_timeout(%d)", cfg.Database.BusyTimeout)},
	}.Encode())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One connection per in-flight lookup; the cap keeps a burst of
	// requests from opening an unbounded number of file handles.
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	database := &Database{
		DB:  db,
		log: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return database, nil
}

// Close closes the database handle and its pooled connections.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
