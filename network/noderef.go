package network

import "fmt"

// NodeRef is a non-owning reference to a node inside a NodeTable.
// Elements hold NodeRefs rather than *Node directly so that dropping
// the table they came from is observable instead of silently keeping
// every node it ever held alive.
type NodeRef struct {
	table *NodeTable
	index uint32
}

// Resolve looks up the node this ref points to.
func (r NodeRef) Resolve() (*Node, error) {
	if r.table == nil {
		return nil, fmt.Errorf("network.NodeRef.Resolve: %w", ErrDroppedNode)
	}
	return r.table.At(r.index)
}

// Index reports the table index this ref was minted for.
func (r NodeRef) Index() uint32 {
	return r.index
}
