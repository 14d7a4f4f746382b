// Package workflow defines the entities a workflow definition is made of:
// a versioned graph identity, node references with their provenance, directed
// arcs, and the open extra-data payload attached to typed nodes.
//
// Everything here is a plain value constructed once during a load and never
// mutated afterwards. Persistence and traversal live elsewhere (internal/loader
// and internal/dag respectively).
package workflow
