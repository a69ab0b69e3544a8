package service

import (
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	People *PeopleService
}

// NewServices constructs the service container from the app container
// and the repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		People: NewPeopleService(s, repos.People),
	}, nil
}
