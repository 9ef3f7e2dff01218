package elements_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ForceOverArea/neapolitan/elements"
	"github.com/ForceOverArea/neapolitan/matrix"
	"github.com/ForceOverArea/neapolitan/network"
)

func potentialOf(t *testing.T, n *network.Node) float64 {
	t.Helper()
	p, err := n.Potential()
	require.NoError(t, err)
	vals, err := p.ToSlice()
	require.NoError(t, err)
	return vals[0]
}

// TestCurrentSourceIntoResistor mirrors a two-node current-source loop
// grounded through a resistor: 2A injected through a 5ohm resistor to
// ground should settle the free node at 10V with 2A flowing back out.
func TestCurrentSourceIntoResistor(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	ground, _ := network.NewNode(1)
	require.NoError(t, ground.Ground())
	free, _ := network.NewNode(1)

	groundRef := table.Ref(table.Append(ground))
	freeRef := table.Ref(table.Append(free))

	_, err := elements.CurrentSourceConstructor(groundRef, freeRef, []float64{2.0})
	require.NoError(t, err)
	_, err = elements.ResistorConstructor(freeRef, groundRef, []float64{5.0})
	require.NoError(t, err)

	// Solve by hand at the known equilibrium: free node at 10V makes
	// the resistor carry (10-0)/5 = 2A, balancing the injected 2A.
	tenVolts, err := matrix.NewColumn([]float64{10})
	require.NoError(t, err)
	require.NoError(t, free.SetPotential(tenVolts))

	disc, err := free.FluxDiscrepancy()
	require.NoError(t, err)
	vals, _ := disc.ToSlice()
	require.InDelta(t, 0, vals[0], 1e-9)
}

func TestVoltageSource_LocksFreeEndpoint(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	ground, _ := network.NewNode(1)
	require.NoError(t, ground.Ground())
	free, _ := network.NewNode(1)

	groundRef := table.Ref(table.Append(ground))
	freeRef := table.Ref(table.Append(free))

	_, err := elements.VoltageSourceConstructor(groundRef, freeRef, []float64{5.0})
	require.NoError(t, err)

	require.True(t, free.Locked())
	require.Equal(t, 5.0, potentialOf(t, free))
}

func TestVoltageSource_BothLockedFails(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	require.NoError(t, a.Ground())
	b, _ := network.NewNode(1)
	require.NoError(t, b.Ground())

	aRef := table.Ref(table.Append(a))
	bRef := table.Ref(table.Append(b))

	_, err := elements.VoltageSourceConstructor(aRef, bRef, []float64{1.0})
	require.ErrorIs(t, err, elements.ErrBothEndpointsLocked)
}

func TestConductor_TwoArgumentForm(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	b, _ := network.NewNode(1)
	aRef := table.Ref(table.Append(a))
	bRef := table.Ref(table.Append(b))

	elem, err := elements.ConductorConstructor(aRef, bRef, []float64{2.0, 4.0}) // k/l = 2.0
	require.NoError(t, err)
	require.NotNil(t, elem)
}

func TestConductor_RejectsBadArgCount(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	b, _ := network.NewNode(1)
	aRef := table.Ref(table.Append(a))
	bRef := table.Ref(table.Append(b))

	_, err := elements.ConductorConstructor(aRef, bRef, []float64{1.0, 2.0, 3.0})
	require.ErrorIs(t, err, elements.ErrConductorArgs)
}

func TestConvectionInterface_RequiresSingleGain(t *testing.T) {
	t.Parallel()

	table := network.NewNodeTable()
	a, _ := network.NewNode(1)
	b, _ := network.NewNode(1)
	aRef := table.Ref(table.Append(a))
	bRef := table.Ref(table.Append(b))

	_, err := elements.ConvectionInterfaceConstructor(aRef, bRef, []float64{1.0, 2.0})
	require.ErrorIs(t, err, elements.ErrConvectionArgs)

	_, err = elements.ConvectionInterfaceConstructor(aRef, bRef, []float64{1.0})
	require.NoError(t, err)
}
