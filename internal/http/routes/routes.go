// Package routes wires every HTTP route into a huma API.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/greeter-api/internal/http/greet"
	"github.com/janisto/greeter-api/internal/http/health"
	"github.com/janisto/greeter-api/internal/http/home"
)

// APIPrefix is the path prefix for versionless API routes.
const APIPrefix = "/api"

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	home.Register(api)
	health.Register(api)
	greet.Register(api, APIPrefix)
}
