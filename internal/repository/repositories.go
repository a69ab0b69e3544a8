package repository

import (
	"github.com/deppfellow/people-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// It keeps router/service wiring clean: one object is passed around
// instead of many, and new repositories get added here as fields.
type Repositories struct {
	People *PeopleRepository
}

// NewRepositories constructs the repository container.
//
// Parameter:
//   - s: application container (DB handle lives on s.DB, logger on s.Logger)
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		People: NewPeopleRepository(s),
	}
}
