package service

import (
	"context"
	"testing"

	"github.com/memfsd/memfsd/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	id       string
	category types.Category
	executed string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:       m.id,
		Name:     "Mock " + m.id,
		Category: m.category,
		Tools: []types.Tool{
			{ID: m.id + ".ping", Name: "Ping"},
		},
	}
}

func (m *mockProvider) Execute(_ context.Context, toolID string, _ map[string]interface{}) (*types.Result, error) {
	m.executed = toolID
	return &types.Result{Success: true, Data: map[string]interface{}{"tool": toolID}}, nil
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "mock", category: types.CategoryFilesystem}

	require.NoError(t, r.Register(p))

	got, ok := r.Get("mock")
	require.True(t, ok)
	assert.Equal(t, "mock", got.Definition().ID)

	_, ok = r.Get("absent")
	assert.False(t, ok)
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&mockProvider{id: ""})
	assert.Error(t, err)
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "mock", category: types.CategoryFilesystem}))

	r.Unregister("mock")
	_, ok := r.Get("mock")
	assert.False(t, ok)
}

func TestListSortedAndFiltered(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "zeta", category: types.CategoryFilesystem}))
	require.NoError(t, r.Register(&mockProvider{id: "alpha", category: types.CategoryPersistence}))

	all := r.List(nil)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].ID)
	assert.Equal(t, "zeta", all[1].ID)

	cat := types.CategoryFilesystem
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "zeta", filtered[0].ID)
}

func TestExecuteRouting(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "mock", category: types.CategoryFilesystem}
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "mock.ping", nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "mock.ping", p.executed)
}

func TestExecuteBadToolID(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "noservice", nil)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)

	result, err = r.Execute(context.Background(), "ghost.ping", nil)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "service not found")
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "a", category: types.CategoryFilesystem}))
	require.NoError(t, r.Register(&mockProvider{id: "b", category: types.CategoryFilesystem}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])

	categories := stats["categories"].(map[string]int)
	assert.Equal(t, 2, categories[string(types.CategoryFilesystem)])
}
