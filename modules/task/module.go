package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vk/flowdefgo/internal/registry"
	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Extra is the auxiliary payload for "task" nodes: the human-facing task
// detail shown to whoever works the task.
type Extra struct {
	// TaskName is the short title presented in work lists.
	TaskName string
	// Description is the longer instruction text. May be empty.
	Description string
}

// ExtraType implements workflow.Extra.
func (Extra) ExtraType() string { return "task" }

// extraQuery fetches the detail row keyed by node definition ID.
const extraQuery = `
SELECT task_name,
       COALESCE(description, '')
  FROM wf_task
 WHERE node_id = ?`

// LoadExtra loads the task detail for one node definition. A task node
// without its detail row is malformed data, so the missing row is an error
// that aborts the surrounding graph load.
func LoadExtra(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
	var e Extra
	row := q.QueryRowContext(ctx, extraQuery, defID)
	if err := row.Scan(&e.TaskName, &e.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task node %d has no wf_task row", defID)
		}
		return nil, fmt.Errorf("load task extra for node %d: %w", defID, err)
	}
	return e, nil
}

// Register registers the loader with the node-extra registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExtraLoader("task", LoadExtra)
}
