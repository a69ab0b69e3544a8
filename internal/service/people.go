package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

// PeopleService implements person lookup semantics on top of the
// repository layer.
type PeopleService struct {
	repo *repository.PeopleRepository
	log  *zerolog.Logger
}

// NewPeopleService constructs a PeopleService.
func NewPeopleService(s *server.Server, repo *repository.PeopleRepository) *PeopleService {
	return &PeopleService{
		repo: repo,
		log:  s.Logger,
	}
}

// GetPerson looks up one person by id.
//
// Contract:
//   - row found: the row's columns as a dynamic map, serialized by the
//     handler as a flat JSON object
//   - no row: 404 error whose message embeds the requested id:
//     "Person with id <id> not found"
//   - storage failure: propagated unmodified; the global error funnel
//     classifies it (busy/locked -> 503, everything else -> 500)
//
// Repeated calls with no intervening external writes return identical
// results; there is no caching or shared state between calls.
func (s *PeopleService) GetPerson(ctx context.Context, id int64) (repository.Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("Person with id %d not found", id), nil,
			)
		}
		return nil, err
	}

	return person, nil
}
