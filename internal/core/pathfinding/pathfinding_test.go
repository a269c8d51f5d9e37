package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hop struct{ from, to int }

func hops(path []Connection) []hop {
	out := make([]hop, len(path))
	for i, c := range path {
		out[i] = hop{c.From, c.To}
	}
	return out
}

func TestFindPathMatrix(t *testing.T) {
	g, err := NewMatrixGraph([][]float64{
		{0.0, 0.2, 0.0, 1.2, 0.0, 0.0, 9.5, 0.0},
		{0.1, 0.0, 0.0, 0.0, 3.1, 0.0, 0.0, 0.0},
		{0.0, 2.3, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0},
		{4.5, 0.0, 0.0, 0.0, 3.5, 0.0, 0.0, 0.0},
		{0.0, 0.0, 2.1, 0.0, 0.0, 0.0, 0.0, 0.0},
		{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.1},
		{0.0, 0.0, 0.0, 0.0, 0.0, 0.7, 0.0, 5.2},
		{0.0, 0.0, 0.0, 0.0, 0.3, 0.0, 0.0, 0.0},
	})
	require.NoError(t, err)

	path, ok := FindPath(g, 0, 7)
	require.True(t, ok)
	assert.Equal(t, []hop{{0, 1}, {1, 4}, {4, 2}, {2, 5}, {5, 7}}, hops(path))
}

func TestFindPathLists(t *testing.T) {
	g, err := NewListGraph([][]Connection{
		{{1.3, 0, 1}, {1.6, 0, 2}, {3.3, 0, 3}},
		{{1.5, 1, 4}, {1.9, 1, 5}},
		{{1.3, 2, 3}},
		{},
		{},
		{{1.4, 5, 6}},
		{},
	})
	require.NoError(t, err)

	path, ok := FindPath(g, 0, 6)
	require.True(t, ok)
	assert.Equal(t, []hop{{0, 1}, {1, 5}, {5, 6}}, hops(path))

	// The two-hop route through node 2 is cheaper than the direct connection.
	path, ok = FindPath(g, 0, 3)
	require.True(t, ok)
	assert.Equal(t, []hop{{0, 2}, {2, 3}}, hops(path))
}

func TestFindPathNoPath(t *testing.T) {
	matrix, err := NewMatrixGraph([][]float64{
		{0.0, 1.5, 0.0},
		{0.5, 0.0, 0.0},
		{2.1, 1.7, 0.0},
	})
	require.NoError(t, err)
	lists, err := NewListGraph([][]Connection{
		{{1.5, 0, 1}},
		{{0.5, 1, 0}},
		{{2.1, 2, 0}, {1.7, 2, 1}},
	})
	require.NoError(t, err)

	for _, g := range []Graph{matrix, lists} {
		path, ok := FindPath(g, 0, 2)
		assert.False(t, ok)
		assert.Nil(t, path)
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	g, err := NewMatrixGraph([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	path, ok := FindPath(g, 1, 1)
	assert.True(t, ok)
	assert.Empty(t, path)

	_, ok = FindPath(g, 0, 5)
	assert.False(t, ok)
	_, ok = FindPath(g, -1, 0)
	assert.False(t, ok)
	assert.Nil(t, g.Connections(9))
}

func TestGraphValidation(t *testing.T) {
	_, err := NewMatrixGraph([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, ErrNotSquare)

	_, err = NewMatrixGraph([][]float64{{0, -1}, {1, 0}})
	require.ErrorIs(t, err, ErrNegativeCost)

	_, err = NewListGraph([][]Connection{{{1, 1, 0}}, {}})
	require.ErrorIs(t, err, ErrBadConnection)

	_, err = NewListGraph([][]Connection{{{1, 0, 3}}})
	require.ErrorIs(t, err, ErrBadConnection)
}
