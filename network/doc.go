// Package network models the nodal graph that a study is built from:
// nodes hold a potential and an equilibrium constraint, elements carry
// flux between two nodes according to a pluggable rule.
//
// Ownership is asymmetric by design. A node strongly owns the elements
// attached to it (they live in its inputs/outputs slices and are kept
// alive by that), while an element only holds non-owning NodeRefs into
// the NodeTable its endpoints came from. This breaks the reference
// cycle a node/element graph would otherwise need, without requiring
// the whole graph to be walked and torn down by hand: invalidating the
// table is enough to make every ref report ErrDroppedNode.
package network
