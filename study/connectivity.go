package study

import (
	"fmt"
	"strconv"

	"github.com/ForceOverArea/neapolitan/internal/topology"
)

// checkConnectivity walks the node graph implied by adjacency (one
// entry per element, undirected) starting from node 0 and fails with
// ErrUnreachableNode if any of the nodeCount nodes was never reached.
// A network with an unreachable node produces a Jacobian with an
// all-zero row during solve, which TryInplaceInvert only ever reports
// as an opaque singular matrix; running this check first turns that
// into a diagnosis a caller can act on.
func checkConnectivity(nodeCount int, adjacency map[uint32][]uint32) error {
	if nodeCount == 0 {
		return nil
	}

	g := topology.NewGraph()
	for i := 0; i < nodeCount; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return fmt.Errorf("study.checkConnectivity: %w", err)
		}
	}
	for from, outs := range adjacency {
		for _, to := range outs {
			if err := g.AddEdge(strconv.Itoa(int(from)), strconv.Itoa(int(to))); err != nil {
				return fmt.Errorf("study.checkConnectivity: %w", err)
			}
		}
	}

	visited := make(map[uint32]bool, nodeCount)
	stack := []uint32{0}
	visited[0] = true
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]

		neighbors, err := g.Neighbors(strconv.Itoa(int(cur)))
		if err != nil {
			return fmt.Errorf("study.checkConnectivity: %w", err)
		}
		for _, n := range neighbors {
			next, err := strconv.Atoi(n)
			if err != nil {
				return fmt.Errorf("study.checkConnectivity: %w", err)
			}
			if !visited[uint32(next)] {
				visited[uint32(next)] = true
				stack = append(stack, uint32(next))
			}
		}
	}

	if len(visited) == nodeCount {
		return nil
	}

	unreached := make([]uint32, 0, nodeCount-len(visited))
	for i := uint32(0); i < uint32(nodeCount); i++ {
		if !visited[i] {
			unreached = append(unreached, i)
		}
	}
	return fmt.Errorf("study.checkConnectivity: unreachable node(s) %v: %w", unreached, ErrUnreachableNode)
}
