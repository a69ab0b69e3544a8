package handler

import (
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Similar to Middlewares and Services: one object is passed to the router
// instead of many. Handlers represent the HTTP layer: parse input,
// validate, call services, and return responses.
type Handlers struct {
	Health *HealthHandler // Health serves service health endpoints.
	People *PeopleHandler // People serves the person lookup endpoint.
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/db)
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		People: NewPeopleHandler(s, services.People),
	}
}
