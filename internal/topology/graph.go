package topology

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex ID was supplied.
	ErrEmptyVertexID = errors.New("topology: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that
	// was never added.
	ErrVertexNotFound = errors.New("topology: vertex not found")
)

// Graph is an in-memory undirected graph: vertices identified by
// string ID, edges recorded only as adjacency. muVert guards vertices;
// muAdj guards the adjacency sets.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	vertices map[string]struct{}
	adj      map[string]map[string]struct{}
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]struct{}),
	}
}

// AddVertex registers id if it isn't already present. Adding the same
// id twice is a no-op, not an error.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id has been added.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// VertexCount returns the number of distinct vertices added.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// AddEdge connects from and to in both directions. Both endpoints must
// already exist via AddVertex. A self-loop or a repeated edge is
// harmless: the adjacency set simply doesn't grow.
func (g *Graph) AddEdge(from, to string) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("topology.AddEdge: %q: %w", from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("topology.AddEdge: %q: %w", to, ErrVertexNotFound)
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.ensureAdjacency(from, to)
	g.ensureAdjacency(to, from)
	return nil
}

// ensureAdjacency records to as a neighbor of from. Must be called
// under muAdj's write lock.
func (g *Graph) ensureAdjacency(from, to string) {
	if g.adj[from] == nil {
		g.adj[from] = make(map[string]struct{})
	}
	g.adj[from][to] = struct{}{}
}

// Neighbors returns the sorted, unique IDs adjacent to id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("topology.Neighbors: %q: %w", id, ErrVertexNotFound)
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
