package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

// Person is one row of the people table, keyed by column name.
//
// The schema is not known to this service beyond the id column, so the
// row is carried as a dynamic map and serialized to JSON as-is. Column
// order is not preserved; the contract does not require it.
type Person map[string]any

// PeopleRepository performs read access against the people table.
//
// Records are created and destroyed entirely outside this service; the
// only operation is the point lookup by primary key.
type PeopleRepository struct {
	db  *sql.DB
	log *zerolog.Logger
}

// NewPeopleRepository constructs a PeopleRepository from the app container.
func NewPeopleRepository(s *server.Server) *PeopleRepository {
	return &PeopleRepository{
		db:  s.DB.DB,
		log: s.Logger,
	}
}

// GetByID fetches at most one row from the people table by primary key.
//
// Resource model: one connection is checked out of the pool for the
// duration of the call and released on every exit path, including query
// errors and context cancellation. Concurrent lookups each own their own
// connection and do not interfere.
//
// Returns sql.ErrNoRows (wrapped) when no row matches; the service layer
// turns that into the client-facing not-found error. Driver failures
// propagate unwrapped for the global error funnel to classify.
func (r *PeopleRepository) GetByID(ctx context.Context, id int64) (Person, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, `SELECT * FROM people WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		// Next returns false on both exhaustion and iteration error;
		// distinguish the two before reporting not-found.
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("fetching person row: %w", err)
		}
		return nil, fmt.Errorf("person id=%d: %w", id, sql.ErrNoRows)
	}

	// Columns are enumerated dynamically: the schema beyond id is opaque
	// and passed through to the client verbatim.
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading person columns: %w", err)
	}

	values := make([]any, len(columns))
	scanTargets := make([]any, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	if err := rows.Scan(scanTargets...); err != nil {
		return nil, fmt.Errorf("scanning person row: %w", err)
	}

	person := make(Person, len(columns))
	for i, column := range columns {
		value := values[i]
		// TEXT/BLOB columns may materialize as []byte depending on the
		// driver; normalize to string so JSON output is stable.
		if raw, ok := value.([]byte); ok {
			value = string(raw)
		}
		person[column] = value
	}

	return person, nil
}
