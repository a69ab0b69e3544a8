// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters:
//  1. RequestID    - correlation id must exist before anything logs
//  2. EnhanceContext - request-scoped logger built from the request id
//  3. RequestLogger - one "API" log line per request
//  4. Recover      - panics become 500s
//  5. Secure       - standard security headers
//  6. CORS         - origins from config
func New(mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()

	// Hide Echo's banner and port lines; the app logger owns startup output.
	r.HideBanner = true
	r.HidePort = true

	// Every error from every handler funnels through here and is written
	// as the JSON error envelope.
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.Recover())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.CORS())

	registerSystemRoutes(r, h)
	registerPeopleRoutes(r, h)

	return r
}

// registerPeopleRoutes wires the person lookup endpoint.
func registerPeopleRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/people/:people_id", handler.Handle(
		h.People.Handler,
		h.People.GetPerson,
		http.StatusOK,
		func() *handler.GetPersonRequest { return &handler.GetPersonRequest{} },
	))
}
