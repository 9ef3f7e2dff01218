package study_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ForceOverArea/neapolitan/elements"
	"github.com/ForceOverArea/neapolitan/study"
)

func TestBuild_RejectsEmptyModel(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{Nodes: 0})
	require.NoError(t, err)
	_, err = cfg.Build()
	require.ErrorIs(t, err, study.ErrNoNodesInSystem)
}

func TestBuild_RejectsUnknownElementType(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{
		Nodes: 2,
		Elements: []study.ElementSpec{
			{ElementType: "not_a_real_type", Input: 0, Output: 1, Gain: []float64{1}},
		},
	})
	require.NoError(t, err)
	_, err = cfg.Build()
	require.ErrorIs(t, err, study.ErrModelTypeNotFound)
}

func TestBuild_RejectsOutOfRangeNode(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{
		Nodes: 1,
		Elements: []study.ElementSpec{
			{ElementType: elements.Resistor, Input: 0, Output: 5, Gain: []float64{1}},
		},
	})
	require.NoError(t, err)
	_, err = cfg.Build()
	require.ErrorIs(t, err, study.ErrNodeDoesNotExist)
}

func TestBuild_RejectsUnreachableNode(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{
		Nodes:         3,
		Configuration: []study.NodeConfig{{Node: 0, Locked: true}},
		Elements: []study.ElementSpec{
			// node 2 is never connected to anything.
			{ElementType: elements.VoltageSource, Input: 0, Output: 1, Gain: []float64{5}},
		},
	})
	require.NoError(t, err)
	_, err = cfg.Build()
	require.ErrorIs(t, err, study.ErrUnreachableNode)
}

// TestSolve_CurrentSourceIntoResistor matches the scenario worked out
// in elements_test.go: a 2A current source grounded through a 5ohm
// resistor settles the free node at 10V.
func TestSolve_CurrentSourceIntoResistor(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{
		Nodes:         2,
		Configuration: []study.NodeConfig{{Node: 0, Locked: true}},
		Elements: []study.ElementSpec{
			{ElementType: elements.CurrentSource, Input: 0, Output: 1, Gain: []float64{2.0}},
			{ElementType: elements.Resistor, Input: 1, Output: 0, Gain: []float64{5.0}},
		},
	})
	require.NoError(t, err)

	built, err := cfg.Build()
	require.NoError(t, err)

	result, err := built.Solve(1e-9, 100)
	require.NoError(t, err)

	require.InDelta(t, 10.0, result.Nodes["1"][0], 1e-6)
	require.InDelta(t, 0.0, result.Nodes["0"][0], 1e-9)
}

// TestSolve_ResistiveDivider covers a grounded voltage source driving
// a three-resistor chain back to ground. The expected potentials below
// are the self-consistent solution of the network as specified (every
// resistor in the loop must carry the same current); a 0.75A loop
// current fixes the free nodes at 1.5V and 0.75V respectively.
func TestSolve_ResistiveDivider(t *testing.T) {
	t.Parallel()

	cfg, err := study.Configure(study.Model{
		Nodes:         4,
		Configuration: []study.NodeConfig{{Node: 0, Locked: true}},
		Elements: []study.ElementSpec{
			{ElementType: elements.VoltageSource, Input: 0, Output: 1, Gain: []float64{3.0}},
			{ElementType: elements.Resistor, Input: 1, Output: 2, Gain: []float64{2.0}},
			{ElementType: elements.Resistor, Input: 2, Output: 3, Gain: []float64{1.0}},
			{ElementType: elements.Resistor, Input: 3, Output: 0, Gain: []float64{1.0}},
		},
	})
	require.NoError(t, err)

	built, err := cfg.Build()
	require.NoError(t, err)

	result, err := built.Solve(1e-9, 200)
	require.NoError(t, err)

	require.InDelta(t, 0.0, result.Nodes["0"][0], 1e-9)
	require.InDelta(t, 3.0, result.Nodes["1"][0], 1e-6)
	require.InDelta(t, 1.5, result.Nodes["2"][0], 1e-6)
	require.InDelta(t, 0.75, result.Nodes["3"][0], 1e-6)

	for _, flux := range result.Elements {
		require.InDelta(t, 0.75, flux[0], 1e-6)
	}
}

func TestRegistry_CollisionAndNotFound(t *testing.T) {
	t.Parallel()

	r := study.NewRegistry()
	require.NoError(t, r.Register("widget", elements.ResistorConstructor))
	err := r.Register("widget", elements.ResistorConstructor)
	require.ErrorIs(t, err, study.ErrElementTypeNameCollision)

	_, err = r.Lookup("missing")
	require.ErrorIs(t, err, study.ErrModelTypeNotFound)
}
