package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowdefgo/internal/store"
	"github.com/vk/flowdefgo/internal/workflow"
)

type fakeExtra struct {
	DefID int64
}

func (fakeExtra) ExtraType() string { return "fake" }

func TestResolve_Unregistered(t *testing.T) {
	r := New()

	extra, err := r.Resolve(context.Background(), nil, "unknown-type", 7)
	require.NoError(t, err, "unregistered types are not an error")
	assert.Equal(t, workflow.NoExtra{}, extra)
}

func TestResolve_RegisteredLoaderInvoked(t *testing.T) {
	r := New()
	r.RegisterExtraLoader("fake", func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
		return fakeExtra{DefID: defID}, nil
	})

	extra, err := r.Resolve(context.Background(), nil, "fake", 99)
	require.NoError(t, err)
	assert.Equal(t, fakeExtra{DefID: 99}, extra)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	r := New()
	r.RegisterExtraLoader("fake", func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
		return fakeExtra{}, nil
	})

	// No wildcard or prefix matching.
	extra, err := r.Resolve(context.Background(), nil, "fake2", 1)
	require.NoError(t, err)
	assert.Equal(t, workflow.NoExtra{}, extra)
}

func TestResolve_LoaderErrorPropagates(t *testing.T) {
	boom := errors.New("related row missing")
	r := New()
	r.RegisterExtraLoader("fake", func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
		return nil, boom
	})

	_, err := r.Resolve(context.Background(), nil, "fake", 1)
	assert.ErrorIs(t, err, boom)
}

func TestRegisterExtraLoader_DuplicatePanics(t *testing.T) {
	r := New()
	loader := func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
		return workflow.NoExtra{}, nil
	}
	r.RegisterExtraLoader("fake", loader)

	assert.Panics(t, func() {
		r.RegisterExtraLoader("fake", loader)
	})
}

func TestTypes_Sorted(t *testing.T) {
	r := New()
	loader := func(ctx context.Context, q store.Querier, defID int64) (workflow.Extra, error) {
		return workflow.NoExtra{}, nil
	}
	r.RegisterExtraLoader("timer", loader)
	r.RegisterExtraLoader("task", loader)

	assert.Equal(t, []string{"task", "timer"}, r.Types())
}
