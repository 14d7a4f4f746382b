// Package registry provides the central "glue" for node-extra loading.
//
// The Registry maps a node-type tag (e.g. "task") to the Go function that
// loads that type's auxiliary data from the row source. Modules register
// their loaders at startup; during a graph load the node assembler resolves
// each node's type through the registry. Types without a registered loader
// resolve to workflow.NoExtra — extensibility is opt-in and an unknown type
// is never an error.
package registry
