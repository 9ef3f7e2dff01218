package network

import (
	"fmt"
	"sync"
)

// NodeTable owns a set of nodes and hands out non-owning NodeRefs into
// it. Invalidating the table (instead of relying on every element
// being torn down individually) is what turns a dropped network into a
// deterministic ErrDroppedNode for anything still holding a ref.
type NodeTable struct {
	mu      sync.RWMutex
	nodes   []*Node
	invalid bool
}

// NewNodeTable returns an empty table.
func NewNodeTable() *NodeTable {
	return &NodeTable{}
}

// Append adds a node to the table and returns the index it was stored
// under.
func (t *NodeTable) Append(n *Node) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = append(t.nodes, n)
	return uint32(len(t.nodes) - 1)
}

// Len reports how many nodes the table holds.
func (t *NodeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// At resolves an index to its node, failing if the table has been
// invalidated or the index was never populated.
func (t *NodeTable) At(i uint32) (*Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.invalid || int(i) >= len(t.nodes) {
		return nil, fmt.Errorf("network.NodeTable.At(%d): %w", i, ErrDroppedNode)
	}
	return t.nodes[i], nil
}

// All returns a snapshot of every node currently in the table, in
// index order.
func (t *NodeTable) All() ([]*Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.invalid {
		return nil, fmt.Errorf("network.NodeTable.All: %w", ErrDroppedNode)
	}
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)
	return out, nil
}

// Ref mints a non-owning reference to the node at index i.
func (t *NodeTable) Ref(i uint32) NodeRef {
	return NodeRef{table: t, index: i}
}

// Invalidate marks the table as dropped. Every NodeRef minted from it
// now resolves to ErrDroppedNode.
func (t *NodeTable) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.invalid = true
}
