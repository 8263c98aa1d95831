// Package home serves the API root.
package home

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/greeter-api/internal/platform/logging"
)

// WelcomeMessage is returned by GET /.
const WelcomeMessage = "Welcome to Flask Jenkins CI/CD Pipeline!"

// Register wires the root route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"General"},
	}, welcomeHandler)
}

func welcomeHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "welcome", zap.String("path", "/"))
	return &Output{Body: Welcome{Message: WelcomeMessage, Status: "success"}}, nil
}
