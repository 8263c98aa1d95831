package greet

// Greeting is the greeting payload.
type Greeting struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, Jenkins!"`
	Status  string `json:"status" doc:"Outcome of the request" example:"success"`
}

// Output is the response wrapper for the greet endpoint.
type Output struct {
	Body Greeting
}
