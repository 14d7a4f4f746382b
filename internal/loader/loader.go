package loader

import (
	"context"

	"github.com/vk/flowdefgo/internal/ctxlog"
	"github.com/vk/flowdefgo/internal/dag"
	"github.com/vk/flowdefgo/internal/registry"
	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// LoadLatestGraph loads the highest-versioned graph stored under name and
// assembles it into a traversable dag.Graph.
func LoadLatestGraph(ctx context.Context, q store.Querier, name string, reg *registry.Registry) (*dag.Graph, error) {
	id, err := ResolveLatest(ctx, q, name)
	if err != nil {
		return nil, err
	}
	return load(ctx, q, id, reg)
}

// LoadGraph loads one exact (name, version) graph revision and assembles it
// into a traversable dag.Graph.
func LoadGraph(ctx context.Context, q store.Querier, name string, version int, reg *registry.Registry) (*dag.Graph, error) {
	id, err := ResolveVersion(ctx, q, name, version)
	if err != nil {
		return nil, err
	}
	return load(ctx, q, id, reg)
}

// load drives the fixed stages after identity resolution: nodes, then arcs,
// then construction. Each stage failure propagates unchanged and aborts the
// whole load.
func load(ctx context.Context, q store.Querier, id workflow.GraphID, reg *registry.Registry) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("load: Graph identity resolved.", "graph", id.String(), "graph_id", id.ID)

	nodes, err := loadNodes(ctx, q, id, reg)
	if err != nil {
		return nil, err
	}
	logger.Debug("load: Node assembly complete.", "graph", id.String(), "node_count", len(nodes))

	arcs, err := loadArcs(ctx, q, id)
	if err != nil {
		return nil, err
	}
	logger.Debug("load: Arc assembly complete.", "graph", id.String(), "arc_count", len(arcs))

	return dag.Build(ctx, id, nodes, arcs)
}
