package timer

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

// Extra is the auxiliary payload for "timer" nodes.
type Extra struct {
	// Delay is the engine-interpreted delay specification, e.g. "5m" or a
	// cron-like expression. Carried opaquely.
	Delay string
}

// ExtraType implements workflow.Extra.
func (Extra) ExtraType() string { return "timer" }

// extraQuery fetches the delay row keyed by node definition ID.
const extraQuery = `
SELECT delay
  FROM wf_timer
 WHERE node_id = ?`

// LoadExtra loads the delay specification for one timer node definition.
// The row is required; its absence aborts the surrounding graph load.
func LoadExtra(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
	var e Extra
	row := q.QueryRowContext(ctx, extraQuery, defID)
	if err := row.Scan(&e.Delay); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("timer node %d has no wf_timer row", defID)
		}
		return nil, fmt.Errorf("load timer extra for node %d: %w", defID, err)
	}
	return e, nil
}

// Register registers the loader with the node-extra registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExtraLoader("timer", LoadExtra)
}
