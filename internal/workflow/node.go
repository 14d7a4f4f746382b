package workflow

import "strings"

// PathSeparator joins the segments of an instance path. Each nested
// sub-workflow inclusion appends one segment.
const PathSeparator = ":"

// Node is one node reference inside a loaded graph: an instantiation of a
// node definition within a specific graph revision. The same definition can
// appear several times when sub-workflows are included.
type Node struct {
	// RefID is the node-reference identifier, unique within the graph
	// instantiation. Arcs point at RefIDs, never at definition IDs.
	RefID int64
	// DefID is the identifier of the underlying node definition row.
	DefID int64
	// Type is the node-type tag that selects an extra-data loader.
	Type string
	// Name is the human-readable node name from the definition.
	Name string
	// Source records which graph defined this node and how deeply nested
	// the reference is.
	Source NodeSource
	// IsJoin reports whether the node waits for all incoming arcs.
	IsJoin bool
	// IsStart reports whether the node is an entry point. Only top-level
	// references can be start nodes; a definition pulled in through a
	// sub-workflow inclusion never starts the outer graph.
	IsStart bool
	// Guard is the node's guard expression. Empty means no guard. The
	// expression is carried opaquely; evaluation belongs to the engine.
	Guard string
	// Extra holds the type-specific auxiliary payload, or NoExtra.
	Extra Extra
}

// NodeSource describes where a node reference came from: the graph revision
// that defines the node and the chain of sub-workflow inclusions (if any)
// that pulled it into the loaded graph.
type NodeSource struct {
	// GraphName is the name of the defining graph.
	GraphName string
	// GraphVersion is the version of the defining graph.
	GraphVersion int
	// InstancePath encodes the inclusion chain, one segment per nesting
	// level joined by PathSeparator. Empty for top-level references.
	InstancePath string
}

// Depth returns the nesting depth of the reference: 0 for a top-level node,
// otherwise one more than the number of separators in the instance path.
func (s NodeSource) Depth() int {
	if s.InstancePath == "" {
		return 0
	}
	return 1 + strings.Count(s.InstancePath, PathSeparator)
}
