package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ForceOverArea/neapolitan/matrix"
	"github.com/ForceOverArea/neapolitan/network"
)

func constantFlux(value float64) network.FluxCalculation {
	return func(_, _ *network.Node, _ *matrix.Dense, _ bool) (*matrix.Dense, error) {
		return matrix.NewColumn([]float64{value})
	}
}

func TestNewNode_DefaultsToOnes(t *testing.T) {
	t.Parallel()

	n, err := network.NewNode(2)
	require.NoError(t, err)

	pot, err := n.Potential()
	require.NoError(t, err)
	vals, err := pot.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, vals)
	require.False(t, n.Locked())
}

func TestNode_Ground(t *testing.T) {
	t.Parallel()

	n, err := network.NewNode(1)
	require.NoError(t, err)
	require.NoError(t, n.Ground())

	pot, err := n.Potential()
	require.NoError(t, err)
	vals, _ := pot.ToSlice()
	require.Equal(t, []float64{0}, vals)
	require.True(t, n.Locked())
}

func TestNodeTable_ResolveAndInvalidate(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	n0, _ := network.NewNode(1)
	n1, _ := network.NewNode(1)
	i0 := table.Append(n0)
	i1 := table.Append(n1)
	require.Equal(t, uint32(0), i0)
	require.Equal(t, uint32(1), i1)
	require.Equal(t, 2, table.Len())

	ref := table.Ref(i0)
	resolved, err := ref.Resolve()
	require.NoError(t, err)
	require.Same(t, n0, resolved)

	_, err = table.At(5)
	require.ErrorIs(t, err, network.ErrDroppedNode)

	table.Invalidate()
	_, err = ref.Resolve()
	require.ErrorIs(t, err, network.ErrDroppedNode)
}

func TestNodeRef_ZeroValueIsDropped(t *testing.T) {
	t.Parallel()

	var ref network.NodeRef
	_, err := ref.Resolve()
	require.ErrorIs(t, err, network.ErrDroppedNode)
}

func TestTryNewElement_ConnectsBothEndpoints(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	b, _ := network.NewNode(1)
	refA := table.Ref(table.Append(a))
	refB := table.Ref(table.Append(b))

	elem, err := network.TryNewElement([]float64{1}, refA, refB, constantFlux(3), false, true, true)
	require.NoError(t, err)

	flux, err := elem.GetFlux()
	require.NoError(t, err)
	vals, _ := flux.ToSlice()
	require.Equal(t, []float64{3}, vals)

	// a gained an output, b gained an input; discrepancy balances
	// around that single element.
	discA, err := a.FluxDiscrepancy()
	require.NoError(t, err)
	av, _ := discA.ToSlice()
	require.Equal(t, []float64{-3}, av)

	discB, err := b.FluxDiscrepancy()
	require.NoError(t, err)
	bv, _ := discB.ToSlice()
	require.Equal(t, []float64{3}, bv)
}

func TestTryNewElement_DroppedEndpointFails(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	refA := table.Ref(table.Append(a))
	var refB network.NodeRef

	_, err := network.TryNewElement([]float64{1}, refA, refB, constantFlux(1), false, true, true)
	require.ErrorIs(t, err, network.ErrDroppedNode)
}
