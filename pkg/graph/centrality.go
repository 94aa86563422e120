package graph

import "context"

// DefaultCentrality is returned for unknown ids and for graphs too
// degenerate to rank (no nodes or no edges).
const DefaultCentrality = 0.1

const (
	pageRankDamping    = 0.85
	pageRankIterations = 100
	pageRankTolerance  = 1e-9
)

// Centrality returns the cached PageRank score for the node, or
// DefaultCentrality for unknown ids. Never fails: a stale id from the
// vector index degrades to the default instead of an error.
func (s *MemoryStore) Centrality(_ context.Context, id string) (float64, error) {
	idx, ok := s.byID[id]
	if !ok || s.centrality == nil {
		return DefaultCentrality, nil
	}
	return s.centrality[idx], nil
}

// pageRank computes PageRank over the directed graph with the standard
// power iteration. Parallel edges count once per edge, matching the
// multigraph semantics. Returns nil for degenerate graphs so lookups
// fall back to DefaultCentrality.
func pageRank(s *MemoryStore) []float64 {
	n := len(s.nodes)
	if n == 0 || len(s.edges) == 0 {
		return nil
	}

	ranks := make([]float64, n)
	next := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1.0 / float64(n)
	}

	base := (1.0 - pageRankDamping) / float64(n)
	for iter := 0; iter < pageRankIterations; iter++ {
		// Rank mass from dangling nodes is spread uniformly.
		var dangling float64
		for i := range next {
			next[i] = base
			if len(s.out[i]) == 0 {
				dangling += ranks[i]
			}
		}
		danglingShare := pageRankDamping * dangling / float64(n)

		for i := range s.nodes {
			outDegree := len(s.out[i])
			if outDegree == 0 {
				continue
			}
			share := pageRankDamping * ranks[i] / float64(outDegree)
			for _, ref := range s.out[i] {
				next[ref.peer] += share
			}
		}

		var delta float64
		for i := range next {
			next[i] += danglingShare
			d := next[i] - ranks[i]
			if d < 0 {
				d = -d
			}
			delta += d
		}
		ranks, next = next, ranks

		if delta < pageRankTolerance {
			break
		}
	}
	return ranks
}
