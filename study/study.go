package study

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ForceOverArea/neapolitan/network"
	"github.com/ForceOverArea/neapolitan/solver"
)

// Study is a fully-built, solvable nodal network: every node and
// element a model document described, wired together, and known to be
// fully connected.
type Study struct {
	table    *network.NodeTable
	elements []*network.Element
}

// Solve drives every unlocked node's potential to equilibrium with the
// multivariate Newton-Raphson solver, then reports the final potential
// of every node and the final flux of every element.
func (s *Study) Solve(margin float64, limit int) (*Result, error) {
	nodes, err := s.table.All()
	if err != nil {
		return nil, fmt.Errorf("study.Solve: %w", err)
	}

	var keys []ComponentIndex
	guess := make(map[ComponentIndex]float64)
	for i, node := range nodes {
		if node.Locked() {
			continue
		}
		idx := ComponentIndex{Node: uint32(i), Component: 0}
		pot, err := node.Potential()
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		v, err := pot.At(0, 0)
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		keys = append(keys, idx)
		guess[idx] = v
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	residuals := func(x map[ComponentIndex]float64) ([]float64, error) {
		for idx, v := range x {
			node := nodes[idx.Node]
			pot, err := node.Potential()
			if err != nil {
				return nil, err
			}
			if err := pot.Set(0, 0, v); err != nil {
				return nil, err
			}
			if err := node.SetPotential(pot); err != nil {
				return nil, err
			}
		}
		out := make([]float64, len(keys))
		for i, idx := range keys {
			disc, err := nodes[idx.Node].FluxDiscrepancy()
			if err != nil {
				return nil, err
			}
			v, err := disc.At(0, 0)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	final, err := solver.MultivariateNewtonRaphson(residuals, keys, guess, margin, limit)
	if err != nil {
		return nil, fmt.Errorf("study.Solve: %w", err)
	}
	// Leave every node's potential at the converged solution; the
	// Jacobian sweep above left them at the last perturbation tried.
	if _, err := residuals(final); err != nil {
		return nil, fmt.Errorf("study.Solve: %w", err)
	}

	result := &Result{
		Nodes:    make(map[string][]float64, len(nodes)),
		Elements: make(map[string][]float64, len(s.elements)),
	}
	for i, node := range nodes {
		pot, err := node.Potential()
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		vals, err := pot.ToSlice()
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		result.Nodes[strconv.Itoa(i)] = vals
	}
	for i, elem := range s.elements {
		flux, err := elem.GetFlux()
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		vals, err := flux.ToSlice()
		if err != nil {
			return nil, fmt.Errorf("study.Solve: %w", err)
		}
		result.Elements[strconv.Itoa(i)] = vals
	}
	return result, nil
}

// NodeCount reports how many nodes this study's network holds.
func (s *Study) NodeCount() int {
	return s.table.Len()
}

// ElementCount reports how many elements this study's network holds.
func (s *Study) ElementCount() int {
	return len(s.elements)
}
