package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ForceOverArea/neapolitan/internal/topology"
)

func TestAddVertex_DuplicateIsNoOp(t *testing.T) {
	t.Parallel()

	g := topology.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.AddVertex("0"))
	require.Equal(t, 1, g.VertexCount())
}

func TestAddVertex_RejectsEmptyID(t *testing.T) {
	t.Parallel()

	g := topology.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), topology.ErrEmptyVertexID)
}

func TestAddEdge_RequiresBothEndpoints(t *testing.T) {
	t.Parallel()

	g := topology.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.ErrorIs(t, g.AddEdge("0", "1"), topology.ErrVertexNotFound)
}

func TestNeighbors_IsUndirectedAndSorted(t *testing.T) {
	t.Parallel()

	g := topology.NewGraph()
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("0", "2"))
	require.NoError(t, g.AddEdge("0", "1"))

	neighbors, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, neighbors)

	// undirected: the reverse direction is implied
	back, err := g.Neighbors("1")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, back)
}

func TestNeighbors_UnknownVertexFails(t *testing.T) {
	t.Parallel()

	g := topology.NewGraph()
	_, err := g.Neighbors("missing")
	require.ErrorIs(t, err, topology.ErrVertexNotFound)
}
