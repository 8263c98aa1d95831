package greet

// Input carries the name path segment. It is used verbatim: no trimming,
// escaping or length checks. Names that decode to contain "/" are not routed.
type Input struct {
	Name string `path:"name" doc:"Name to greet" example:"Jenkins"`
}
