package loader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

// ResolveLatest resolves the identity of the highest-versioned graph stored
// under name. It issues exactly one query; zero rows yields a
// *NotFoundError carrying the name.
func ResolveLatest(ctx context.Context, q store.Querier, name string) (workflow.GraphID, error) {
	var id workflow.GraphID
	row := q.QueryRowContext(ctx, latestGraphQuery, name, name)
	if err := row.Scan(&id.ID, &id.Name, &id.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return workflow.GraphID{}, &NotFoundError{Name: name}
		}
		return workflow.GraphID{}, fmt.Errorf("resolve latest graph %q: %w", name, err)
	}
	return id, nil
}

// ResolveVersion resolves the identity of one exact (name, version) pair.
// Zero rows yields a *NotFoundError carrying both name and version.
func ResolveVersion(ctx context.Context, q store.Querier, name string, version int) (workflow.GraphID, error) {
	var id workflow.GraphID
	row := q.QueryRowContext(ctx, exactGraphQuery, name, version)
	if err := row.Scan(&id.ID, &id.Name, &id.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return workflow.GraphID{}, &NotFoundError{Name: name, Version: version, Exact: true}
		}
		return workflow.GraphID{}, fmt.Errorf("resolve graph %q version %d: %w", name, version, err)
	}
	return id, nil
}

// Versions lists every stored version of name in ascending order. An
// unknown name returns an empty slice, not an error; callers that need the
// distinction resolve first.
func Versions(ctx context.Context, q store.Querier, name string) ([]int, error) {
	rows, err := q.QueryContext(ctx, graphVersionsQuery, name)
	if err != nil {
		return nil, fmt.Errorf("list versions of graph %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan version row for graph %q: %w", name, err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list versions of graph %q: %w", name, err)
	}
	return versions, nil
}
