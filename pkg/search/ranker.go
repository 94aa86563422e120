package search

import (
	"context"
	"sort"

	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/index"
	"github.com/dilshankm/echo-home/pkg/types"
)

// Hybrid score weights: similarity dominates, centrality breaks the
// ties between semantically close nodes by structural importance.
const (
	SimilarityWeight = 0.7
	CentralityWeight = 0.3
)

// Ranker re-scores vector-index candidates with graph centrality.
type Ranker struct {
	store graph.Store
	index index.Index
}

// NewRanker builds a Ranker over the given store and index.
func NewRanker(store graph.Store, idx index.Index) *Ranker {
	return &Ranker{store: store, index: idx}
}

// HybridScore combines a raw cosine similarity in [-1, 1] with a
// centrality score in [0, 1]. The similarity is first mapped onto
// [0, 1] so both terms share a scale; the result is strictly
// increasing in each input while the other is held fixed.
func HybridScore(similarity, centrality float64) float64 {
	normalized := (similarity + 1) / 2
	return SimilarityWeight*normalized + CentralityWeight*centrality
}

// Rank embeds the query, oversamples 2*topK raw neighbors from the
// index (capped at index size) so that centrality can promote nodes
// pure similarity would drop, re-scores them, and returns the topK
// survivors with score >= minScore in descending order. Ties keep the
// index's original order. Stale ids the store no longer knows are
// skipped.
func (r *Ranker) Rank(ctx context.Context, query string, topK int, minScore float64) ([]types.ScoredNode, error) {
	if topK <= 0 {
		return nil, nil
	}

	sample := 2 * topK
	if size := r.index.Size(); sample > size {
		sample = size
	}

	hits, err := r.index.Search(ctx, query, sample)
	if err != nil {
		return nil, err
	}

	var scored []types.ScoredNode
	for _, hit := range hits {
		node, err := r.store.GetNode(ctx, hit.NodeID)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		centrality, err := r.store.Centrality(ctx, hit.NodeID)
		if err != nil {
			return nil, err
		}
		score := HybridScore(hit.Similarity, centrality)
		if score < minScore {
			continue
		}
		scored = append(scored, types.ScoredNode{Node: node, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}
