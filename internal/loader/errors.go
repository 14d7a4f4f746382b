package loader

import "fmt"

// NotFoundError reports that no graph row exists for the requested name, or
// for the requested (name, version) pair when Exact is set.
type NotFoundError struct {
	// Name is the workflow name that was queried.
	Name string
	// Version is the requested version. Meaningful only when Exact is true.
	Version int
	// Exact distinguishes an exact-version lookup from a latest lookup.
	Exact bool
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Exact {
		return fmt.Sprintf("workflow graph not found: %s version %d", e.Name, e.Version)
	}
	return fmt.Sprintf("workflow graph not found: %s", e.Name)
}
