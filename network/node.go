package network

import (
	"fmt"
	"sync"

	"github.com/ForceOverArea/neapolitan/matrix"
)

// Node is one equilibrium point in a nodal network. Its potential is a
// column vector so that multi-component systems (e.g. a vector-valued
// flux) can share the same machinery as scalar ones.
type Node struct {
	mu        sync.RWMutex
	potential *matrix.Dense
	locked    bool
	inputs    []*Element
	outputs   []*Element
	metadata  map[string]float64
}

// NewNode builds a node with an unlocked potential of the given
// dimension, initialized to all ones (matching the solver's default
// initial guess).
func NewNode(dimension int) (*Node, error) {
	ones := make([]float64, dimension)
	for i := range ones {
		ones[i] = 1.0
	}
	pot, err := matrix.NewColumn(ones)
	if err != nil {
		return nil, fmt.Errorf("network.NewNode: %w", err)
	}
	return &Node{potential: pot}, nil
}

// Dimension reports the number of potential components this node
// carries.
func (n *Node) Dimension() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.potential.Rows()
}

// Ground zeroes this node's potential and locks it, the way a boundary
// condition fixes a reference point in the network.
func (n *Node) Ground() error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.Ground: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()

	zeros, err := matrix.NewColumn(make([]float64, n.potential.Rows()))
	if err != nil {
		return fmt.Errorf("network.Ground: %w", err)
	}
	n.potential = zeros
	n.locked = true
	return nil
}

// Locked reports whether this node's potential is fixed by a boundary
// condition and must not be treated as a solver unknown.
func (n *Node) Locked() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.locked
}

// Lock fixes this node's potential at its current value without
// changing it, the way a source element claims a previously-free
// endpoint as its driven output.
func (n *Node) Lock() error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.Lock: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()
	n.locked = true
	return nil
}

// Potential returns a copy of this node's current potential.
func (n *Node) Potential() (*matrix.Dense, error) {
	if !n.mu.TryRLock() {
		return nil, fmt.Errorf("network.Potential: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.RUnlock()
	return n.potential.Clone(), nil
}

// SetPotential overwrites this node's potential. It does not check the
// locked flag; callers that must respect a lock (the solver's closure
// application, in particular) check Locked() themselves.
func (n *Node) SetPotential(p *matrix.Dense) error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.SetPotential: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()
	n.potential = p
	return nil
}

// Metadata returns the string-keyed numeric value stashed under key, if
// any was set.
func (n *Node) Metadata(key string) (float64, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.metadata[key]
	return v, ok
}

// SetMetadata stashes a numeric value under key for later retrieval;
// it has no bearing on the solve itself.
func (n *Node) SetMetadata(key string, value float64) error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.SetMetadata: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()
	if n.metadata == nil {
		n.metadata = make(map[string]float64)
	}
	n.metadata[key] = value
	return nil
}

func (n *Node) addOutput(e *Element) error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.addOutput: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()
	n.outputs = append(n.outputs, e)
	return nil
}

func (n *Node) addInput(e *Element) error {
	if !n.mu.TryLock() {
		return fmt.Errorf("network.addInput: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.Unlock()
	n.inputs = append(n.inputs, e)
	return nil
}

func (n *Node) snapshotIO() (inputs, outputs []*Element, err error) {
	if !n.mu.TryRLock() {
		return nil, nil, fmt.Errorf("network.snapshotIO: %w", ErrAlreadyBorrowed)
	}
	defer n.mu.RUnlock()
	ins := make([]*Element, len(n.inputs))
	copy(ins, n.inputs)
	outs := make([]*Element, len(n.outputs))
	copy(outs, n.outputs)
	return ins, outs, nil
}

// FluxDiscrepancy is the node's equilibrium residual: the sum of flux
// arriving on its inputs minus the sum leaving on its outputs. A
// balanced node has a discrepancy of the zero vector.
func (n *Node) FluxDiscrepancy() (*matrix.Dense, error) {
	ins, outs, err := n.snapshotIO()
	if err != nil {
		return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
	}

	sum, err := matrix.NewDense(n.Dimension(), 1)
	if err != nil {
		return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
	}

	for _, e := range ins {
		f, err := e.GetFlux()
		if err != nil {
			return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
		}
		sum, err = matrix.Add(sum, f)
		if err != nil {
			return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
		}
	}
	for _, e := range outs {
		f, err := e.GetFlux()
		if err != nil {
			return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
		}
		sum, err = matrix.Sub(sum, f)
		if err != nil {
			return nil, fmt.Errorf("network.FluxDiscrepancy: %w", err)
		}
	}
	return sum, nil
}
