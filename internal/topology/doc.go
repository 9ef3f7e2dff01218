// Package topology provides the small undirected-graph structure
// study's connectivity diagnostic builds from node and element
// adjacency. It is a trimmed, domain-specific descendant of a
// general-purpose vertex/edge graph: no directedness, weights,
// multi-edges, or loop options survive here, because reachability from
// node 0 is the only thing that ever needs asking of it.
package topology
