package loader

import (
	"context"
	"fmt"

	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// loadArcs assembles every arc belonging to the graph. Rows map directly to
// entities; whether the endpoints exist is dag.Build's concern.
func loadArcs(ctx context.Context, q store.Querier, id workflow.GraphID) ([]*workflow.Arc, error) {
	rows, err := q.QueryContext(ctx, arcQuery, id.ID)
	if err != nil {
		return nil, fmt.Errorf("query arcs of graph %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	var arcs []*workflow.Arc
	for rows.Next() {
		var a workflow.Arc
		if err := rows.Scan(&a.ID, &a.Name, &a.TailRefID, &a.HeadRefID); err != nil {
			return nil, fmt.Errorf("scan arc row of graph %s: %w", id, err)
		}
		arcs = append(arcs, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read arc rows of graph %s: %w", id, err)
	}
	return arcs, nil
}
