package graph

import (
	"context"
	"sort"

	"github.com/dilshankm/echo-home/pkg/types"
)

// KHopSubgraph expands k rounds from the seed set, following edges in
// both directions, and returns the union of everything reached together
// with every edge traversed, deduplicated. k=0 yields the existing
// seeds and no edges. Unknown seed ids are silently skipped.
func (s *MemoryStore) KHopSubgraph(_ context.Context, seedIDs []string, k int) (*types.Subgraph, error) {
	visited := make(map[int]bool)
	var order []int
	for _, id := range seedIDs {
		idx, ok := s.byID[id]
		if !ok || visited[idx] {
			continue
		}
		visited[idx] = true
		order = append(order, idx)
	}

	seenEdges := make(map[int]bool)
	var edgeOrder []int

	frontier := append([]int(nil), order...)
	for hop := 0; hop < k && len(frontier) > 0; hop++ {
		var next []int
		for _, idx := range frontier {
			for _, refs := range [][]edgeRef{s.out[idx], s.in[idx]} {
				for _, ref := range refs {
					if !seenEdges[ref.edge] {
						seenEdges[ref.edge] = true
						edgeOrder = append(edgeOrder, ref.edge)
					}
					if !visited[ref.peer] {
						visited[ref.peer] = true
						order = append(order, ref.peer)
						next = append(next, ref.peer)
					}
				}
			}
		}
		frontier = next
	}

	sub := &types.Subgraph{
		Nodes: make([]*types.Node, 0, len(order)),
		Edges: make([]*types.Edge, 0, len(edgeOrder)),
	}
	for _, idx := range order {
		sub.Nodes = append(sub.Nodes, s.nodes[idx])
	}
	for _, idx := range edgeOrder {
		sub.Edges = append(sub.Edges, s.edges[idx])
	}
	return sub, nil
}

// FindPaths enumerates simple paths between source and target over the
// undirected view of the graph, each at most maxLength edges long.
// Results are returned in lexicographic order of the id sequence, which
// makes the output deterministic, capped at MaxPaths. Missing endpoints
// yield an empty result.
func (s *MemoryStore) FindPaths(_ context.Context, sourceID, targetID string, maxLength int) ([][]string, error) {
	src, ok := s.byID[sourceID]
	if !ok {
		return nil, nil
	}
	dst, ok := s.byID[targetID]
	if !ok {
		return nil, nil
	}
	if maxLength < 1 {
		return nil, nil
	}

	// Undirected neighbor sets, sorted by node id so the DFS emits
	// paths in lexicographic order without a post-sort.
	neighbors := func(idx int) []int {
		peers := make(map[int]bool)
		for _, ref := range s.out[idx] {
			peers[ref.peer] = true
		}
		for _, ref := range s.in[idx] {
			peers[ref.peer] = true
		}
		sorted := make([]int, 0, len(peers))
		for p := range peers {
			sorted = append(sorted, p)
		}
		sort.Slice(sorted, func(i, j int) bool {
			return s.nodes[sorted[i]].ID < s.nodes[sorted[j]].ID
		})
		return sorted
	}

	var paths [][]string
	onPath := make(map[int]bool)
	path := []int{src}
	onPath[src] = true

	var dfs func(idx int)
	dfs = func(idx int) {
		if len(paths) >= MaxPaths {
			return
		}
		if idx == dst {
			ids := make([]string, len(path))
			for i, p := range path {
				ids[i] = s.nodes[p].ID
			}
			paths = append(paths, ids)
			return
		}
		if len(path)-1 >= maxLength {
			return
		}
		for _, peer := range neighbors(idx) {
			if onPath[peer] {
				continue
			}
			onPath[peer] = true
			path = append(path, peer)
			dfs(peer)
			path = path[:len(path)-1]
			onPath[peer] = false
		}
	}
	dfs(src)

	return paths, nil
}
