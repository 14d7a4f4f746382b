package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// ExtraLoader loads the type-specific auxiliary payload for one node
// definition. Implementations may issue their own queries against q; any
// failure aborts the surrounding graph load.
type ExtraLoader func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error)

// Module is the interface a node-extra module implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the extra loaders for a single application instance.
// Populate it before starting loads; it is read-only afterwards.
type Registry struct {
	loaders map[string]ExtraLoader
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{loaders: make(map[string]ExtraLoader)}
}

// RegisterExtraLoader binds a node-type tag to its loader. Double
// registration is a programmer error and panics at startup.
func (r *Registry) RegisterExtraLoader(nodeType string, fn ExtraLoader) {
	if _, exists := r.loaders[nodeType]; exists {
		panic(fmt.Sprintf("extra loader for node type '%s' already registered", nodeType))
	}
	slog.Debug("Registering extra loader.", "node_type", nodeType)
	r.loaders[nodeType] = fn
}

// Resolve looks up the node type by exact match and invokes its loader.
// Unregistered types resolve to workflow.NoExtra. A registered loader's
// failure is returned as-is so the load fails fast.
func (r *Registry) Resolve(ctx context.Context, q store.Querier, nodeType string, defID int64) (workflow.Extra, error) {
	fn, ok := r.loaders[nodeType]
	if !ok {
		return workflow.NoExtra{}, nil
	}
	return fn(ctx, q, defID)
}

// Types returns the registered node-type tags in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.loaders))
	for t := range r.loaders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
