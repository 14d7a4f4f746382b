package dag

import (
	"fmt"

	"github.com/vk/flowdefgo/internal/workflow"
)

// DanglingArcError reports an arc whose endpoint does not resolve to any
// node reference in the graph being built.
type DanglingArcError struct {
	// Graph identifies the graph under construction.
	Graph workflow.GraphID
	// Arc is the offending arc row.
	Arc workflow.Arc
	// RefID is the endpoint that failed to resolve.
	RefID int64
	// End is "tail" or "head".
	End string
}

// Error implements the error interface.
func (e *DanglingArcError) Error() string {
	return fmt.Sprintf("graph %s: arc %d (%q) references unknown %s node ref %d",
		e.Graph, e.Arc.ID, e.Arc.Name, e.End, e.RefID)
}
