package dag

import (
	"context"

	"github.com/vk/flowdefgo/internal/ctxlog"
	"github.com/vk/flowdefgo/internal/workflow"
)

// Graph is the assembled, immutable representation of one workflow
// definition revision. Nodes are keyed by their reference ID; adjacency is
// precomputed in both directions for engine traversal.
type Graph struct {
	// id is the resolved identity the graph was loaded under.
	id workflow.GraphID
	// nodes maps node reference ID to the node.
	nodes map[int64]*workflow.Node
	// arcs holds every arc in input order.
	arcs []*workflow.Arc
	// outgoing maps a tail reference ID to its leaving arcs.
	outgoing map[int64][]*workflow.Arc
	// incoming maps a head reference ID to its entering arcs.
	incoming map[int64][]*workflow.Arc
}

// Build constructs a validated Graph from flat node and arc lists. It fails
// with a *DanglingArcError if any arc endpoint does not resolve to a node
// reference in the list; no partially indexed graph is ever returned.
func Build(ctx context.Context, id workflow.GraphID, nodes []*workflow.Node, arcs []*workflow.Arc) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph assembly.", "graph", id.String(), "nodes", len(nodes), "arcs", len(arcs))

	g := &Graph{
		id:       id,
		nodes:    make(map[int64]*workflow.Node, len(nodes)),
		arcs:     make([]*workflow.Arc, 0, len(arcs)),
		outgoing: make(map[int64][]*workflow.Arc),
		incoming: make(map[int64][]*workflow.Arc),
	}

	for _, n := range nodes {
		g.nodes[n.RefID] = n
	}

	for _, a := range arcs {
		if _, ok := g.nodes[a.TailRefID]; !ok {
			return nil, &DanglingArcError{Graph: id, Arc: *a, RefID: a.TailRefID, End: "tail"}
		}
		if _, ok := g.nodes[a.HeadRefID]; !ok {
			return nil, &DanglingArcError{Graph: id, Arc: *a, RefID: a.HeadRefID, End: "head"}
		}
		g.arcs = append(g.arcs, a)
		g.outgoing[a.TailRefID] = append(g.outgoing[a.TailRefID], a)
		g.incoming[a.HeadRefID] = append(g.incoming[a.HeadRefID], a)
	}

	logger.Debug("Build: Graph assembly successful.", "graph", id.String())
	return g, nil
}

// ID returns the identity the graph was resolved under.
func (g *Graph) ID() workflow.GraphID {
	return g.id
}

// Node returns the node with the given reference ID, if present.
func (g *Graph) Node(refID int64) (*workflow.Node, bool) {
	n, ok := g.nodes[refID]
	return n, ok
}

// Nodes returns all nodes. The slice is freshly allocated; the order is
// unspecified.
func (g *Graph) Nodes() []*workflow.Node {
	nodes := make([]*workflow.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Arcs returns all arcs in input order. Callers must not modify the slice.
func (g *Graph) Arcs() []*workflow.Arc {
	return g.arcs
}

// Outgoing returns the arcs leaving the given node reference.
func (g *Graph) Outgoing(refID int64) []*workflow.Arc {
	return g.outgoing[refID]
}

// Incoming returns the arcs entering the given node reference.
func (g *Graph) Incoming(refID int64) []*workflow.Arc {
	return g.incoming[refID]
}

// StartNodes returns the entry set for the execution engine: every node
// whose IsStart flag survived assembly.
func (g *Graph) StartNodes() []*workflow.Node {
	var starts []*workflow.Node
	for _, n := range g.nodes {
		if n.IsStart {
			starts = append(starts, n)
		}
	}
	return starts
}

// NodeCount returns the number of node references in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// ArcCount returns the number of arcs in the graph.
func (g *Graph) ArcCount() int {
	return len(g.arcs)
}
