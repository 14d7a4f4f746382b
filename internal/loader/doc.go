// Package loader reconstructs workflow graphs from relational storage.
//
// A load runs in fixed, sequential stages: resolve the graph identity
// (latest or exact version), assemble the node references with their
// type-specific extra data, assemble the arcs, then hand everything to
// dag.Build. Any stage failure aborts the load; the caller never sees a
// partially populated graph.
//
// The row source is a borrowed store.Querier used read-only. The loader
// issues exactly one identity query per resolve call and never retries.
package loader
