// Package greet serves personalized greetings.
package greet

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/greeter-api/internal/platform/logging"
)

// Register wires the greet route under prefix (e.g. "/api").
func Register(api huma.API, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        prefix + "/greet/{name}",
		Summary:     "Greet someone by name",
		Tags:        []string{"Greetings"},
	}, handler)
}

func handler(ctx context.Context, input *Input) (*Output, error) {
	// An encoded slash decodes into a second path segment, which the route does not match.
	if strings.Contains(input.Name, "/") {
		return nil, huma.Error404NotFound("resource not found")
	}
	applog.LogInfo(ctx, "greet", zap.String("name", input.Name))
	return &Output{Body: Greeting{Message: Message(input.Name), Status: "success"}}, nil
}

// Message formats the greeting for name.
func Message(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
