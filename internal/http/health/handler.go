// Package health serves the liveness probe used by orchestration tooling.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	statusHealthy = "healthy"
	serviceName   = "flask-app"
)

// Status is the health payload.
type Status struct {
	Status  string `json:"status" doc:"Health status" example:"healthy"`
	Service string `json:"service" doc:"Service identifier" example:"flask-app"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Status
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"General"},
	}, Handler)
}

// Handler reports liveness. Probes hit it often, so it does not log.
func Handler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{Body: Status{Status: statusHealthy, Service: serviceName}}, nil
}
