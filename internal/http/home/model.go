package home

// Welcome is the welcome payload.
type Welcome struct {
	Message string `json:"message" doc:"Welcome message" example:"Welcome to Flask Jenkins CI/CD Pipeline!"`
	Status  string `json:"status" doc:"Outcome of the request" example:"success"`
}

// Output is the response wrapper for the welcome endpoint.
type Output struct {
	Body Welcome
}
