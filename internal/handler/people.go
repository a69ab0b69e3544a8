package handler

import (
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is shared across request payloads; validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New()

// PeopleHandler exposes the person lookup endpoint.
type PeopleHandler struct {
	Handler
	people *service.PeopleService
}

// NewPeopleHandler constructs a PeopleHandler with access to shared app
// dependencies and the people service.
func NewPeopleHandler(s *server.Server, people *service.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		Handler: NewHandler(s),
		people:  people,
	}
}

// GetPersonRequest is the payload for GET /people/:people_id.
//
// ID binds from the path. A non-integer value fails binding with a 400
// before any lookup is performed.
type GetPersonRequest struct {
	ID int64 `param:"people_id"`
}

// Validate applies validation rules to the bound payload.
//
// Any integer is a legal lookup key (including 0 and negatives); absence
// of a match is handled by the service, not by validation.
func (r *GetPersonRequest) Validate() error {
	return validate.Struct(r)
}

// GetPerson handles GET /people/:people_id.
//
// Responses:
//   - 200 with the row's columns as a flat JSON object
//   - 404 with {"error": "Person with id <id> not found"}
func (h *PeopleHandler) GetPerson(c echo.Context, req *GetPersonRequest) (repository.Person, error) {
	return h.people.GetPerson(c.Request().Context(), req.ID)
}
