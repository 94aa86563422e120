package graph

import (
	"context"
	"fmt"

	"github.com/dilshankm/echo-home/pkg/types"
)

// Neighbor pairs a neighboring node with the relationship that reaches it.
// A multigraph can yield the same node several times under different
// relationships.
type Neighbor struct {
	Node         *types.Node
	Relationship string
	Properties   map[string]any
}

// Store is the read-only query surface over the energy knowledge graph.
// Implementations must be safe for concurrent use after construction.
type Store interface {
	// GetNode returns the node with the given id, or nil if absent.
	GetNode(ctx context.Context, id string) (*types.Node, error)

	// GetNodesByLabel returns all nodes with the given label in
	// insertion order.
	GetNodesByLabel(ctx context.Context, label types.Label) ([]*types.Node, error)

	// GetNeighbors returns nodes reachable over outgoing edges,
	// optionally filtered by relationship type. Empty relationship
	// means no filter. Unknown ids yield an empty slice.
	GetNeighbors(ctx context.Context, id, relationship string) ([]Neighbor, error)

	// KHopSubgraph expands k rounds bidirectionally from the seed set
	// and returns the induced subgraph. Unknown seeds are skipped.
	KHopSubgraph(ctx context.Context, seedIDs []string, k int) (*types.Subgraph, error)

	// FindPaths returns up to MaxPaths simple paths between two nodes
	// over the undirected view, each with at most maxLength edges,
	// in deterministic (lexicographic) order.
	FindPaths(ctx context.Context, sourceID, targetID string, maxLength int) ([][]string, error)

	// Centrality returns the cached structural-importance score for a
	// node in [0, 1]. Absent ids and degenerate graphs yield
	// DefaultCentrality. Never fails.
	Centrality(ctx context.Context, id string) (float64, error)

	// Stats summarizes node, edge, label and relationship counts.
	Stats(ctx context.Context) (*types.GraphStats, error)
}

// MaxPaths caps how many simple paths FindPaths returns per node pair.
const MaxPaths = 10

// edgeRef indexes an edge in the arena together with the peer node it
// connects to, viewed from one endpoint.
type edgeRef struct {
	peer int // arena index of the node at the other end
	edge int // arena index into edges
}

// MemoryStore is the in-process Store implementation: an arena of nodes
// with forward and reverse adjacency lists. Immutable after Load.
type MemoryStore struct {
	nodes []*types.Node
	edges []*types.Edge
	byID  map[string]int

	out [][]edgeRef
	in  [][]edgeRef

	centrality []float64
}

var _ Store = (*MemoryStore)(nil)

// Load validates the given nodes and edges and builds an immutable
// MemoryStore. It returns a *types.SchemaError for duplicate node ids
// or edges referencing unknown endpoints.
func Load(nodes []*types.Node, edges []*types.Edge) (*MemoryStore, error) {
	s := &MemoryStore{
		nodes: make([]*types.Node, 0, len(nodes)),
		edges: make([]*types.Edge, 0, len(edges)),
		byID:  make(map[string]int, len(nodes)),
		out:   make([][]edgeRef, len(nodes)),
		in:    make([][]edgeRef, len(nodes)),
	}

	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("invalid node: %w", err)
		}
		if _, exists := s.byID[n.ID]; exists {
			return nil, &types.SchemaError{Reason: "duplicate node id", NodeID: n.ID}
		}
		s.byID[n.ID] = len(s.nodes)
		s.nodes = append(s.nodes, n)
	}

	for _, e := range edges {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid edge: %w", err)
		}
		src, ok := s.byID[e.Source]
		if !ok {
			return nil, &types.SchemaError{Reason: "edge references unknown source", NodeID: e.Source}
		}
		dst, ok := s.byID[e.Target]
		if !ok {
			return nil, &types.SchemaError{Reason: "edge references unknown target", NodeID: e.Target}
		}
		idx := len(s.edges)
		s.edges = append(s.edges, e)
		s.out[src] = append(s.out[src], edgeRef{peer: dst, edge: idx})
		s.in[dst] = append(s.in[dst], edgeRef{peer: src, edge: idx})
	}

	s.centrality = pageRank(s)
	return s, nil
}

// GetNode returns the node with the given id, or nil if absent.
func (s *MemoryStore) GetNode(_ context.Context, id string) (*types.Node, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return s.nodes[idx], nil
}

// GetNodesByLabel returns all nodes with the given label in insertion order.
func (s *MemoryStore) GetNodesByLabel(_ context.Context, label types.Label) ([]*types.Node, error) {
	var result []*types.Node
	for _, n := range s.nodes {
		if n.Label == label {
			result = append(result, n)
		}
	}
	return result, nil
}

// GetNeighbors returns outgoing neighbors, one entry per edge so that
// parallel edges surface individually.
func (s *MemoryStore) GetNeighbors(_ context.Context, id, relationship string) ([]Neighbor, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	var result []Neighbor
	for _, ref := range s.out[idx] {
		e := s.edges[ref.edge]
		if relationship != "" && e.Relationship != relationship {
			continue
		}
		result = append(result, Neighbor{
			Node:         s.nodes[ref.peer],
			Relationship: e.Relationship,
			Properties:   e.Properties,
		})
	}
	return result, nil
}

// AllNodes returns every node in insertion order. The slice must not be
// mutated by callers.
func (s *MemoryStore) AllNodes() []*types.Node {
	return s.nodes
}

// Stats summarizes the loaded graph.
func (s *MemoryStore) Stats(_ context.Context) (*types.GraphStats, error) {
	stats := &types.GraphStats{
		TotalNodes:        len(s.nodes),
		TotalEdges:        len(s.edges),
		NodeLabels:        make(map[string]int),
		RelationshipTypes: make(map[string]int),
	}
	for _, n := range s.nodes {
		stats.NodeLabels[string(n.Label)]++
	}
	for _, e := range s.edges {
		stats.RelationshipTypes[e.Relationship]++
	}
	return stats, nil
}
