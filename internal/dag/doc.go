// Package dag holds the assembled, traversable form of a loaded workflow
// graph. Build validates the flat node and arc lists into an immutable Graph
// keyed by its identity; the execution engine consumes the result through
// lookup and adjacency accessors.
//
// Unlike an execution-dependency DAG, a workflow definition may legitimately
// contain cycles (loops back to earlier nodes), so no cycle detection is
// performed here — only referential integrity of arc endpoints.
package dag
