package loader

import (
	"context"
	"fmt"

	"github.com/vk/flowdefgo/internal/registry"
	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// flagToBool normalizes the storage encoding of boolean flags. Only "Y" is
// true; the string form never leaves the row boundary.
func flagToBool(flag string) bool {
	return flag == "Y"
}

// loadNodes assembles every node reference belonging to the graph. Row
// order is preserved but carries no meaning. Extra data is resolved through
// the registry per node type; a registered loader's failure aborts the load.
func loadNodes(ctx context.Context, q store.Querier, id workflow.GraphID, reg *registry.Registry) ([]*workflow.Node, error) {
	rows, err := q.QueryContext(ctx, nodeQuery, id.ID)
	if err != nil {
		return nil, fmt.Errorf("query nodes of graph %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	var nodes []*workflow.Node
	for rows.Next() {
		var (
			n         workflow.Node
			joinFlag  string
			startFlag string
			topLevel  bool
		)
		if err := rows.Scan(
			&n.RefID,
			&n.DefID,
			&n.Name,
			&n.Type,
			&joinFlag,
			&startFlag,
			&n.Source.InstancePath,
			&n.Source.GraphName,
			&n.Source.GraphVersion,
			&n.Guard,
			&topLevel,
		); err != nil {
			return nil, fmt.Errorf("scan node row of graph %s: %w", id, err)
		}

		n.IsJoin = flagToBool(joinFlag)
		// A start flag only counts on top-level references: a node pulled
		// in through a sub-workflow inclusion never starts the outer graph.
		n.IsStart = flagToBool(startFlag) && topLevel

		extra, err := reg.Resolve(ctx, q, n.Type, n.DefID)
		if err != nil {
			return nil, err
		}
		n.Extra = extra

		nodes = append(nodes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read node rows of graph %s: %w", id, err)
	}
	return nodes, nil
}
