package study

import "fmt"

// ComponentIndex names one scalar unknown in a study: the component-th
// entry of node Node's potential vector. Packing both fields into a
// single uint64 key gives every ComponentIndex a total, stable order
// for free, which is what the solver needs to index its Jacobian rows
// and columns deterministically.
type ComponentIndex struct {
	Node      uint32
	Component uint32
}

func (c ComponentIndex) key() uint64 {
	return uint64(c.Node)<<32 | uint64(c.Component)
}

// Less reports whether c sorts before other under the (Node,
// Component) ordering used throughout the solve.
func (c ComponentIndex) Less(other ComponentIndex) bool {
	return c.key() < other.key()
}

func (c ComponentIndex) String() string {
	return fmt.Sprintf("%d.%d", c.Node, c.Component)
}
