package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/index"
	"github.com/dilshankm/echo-home/pkg/types"
)

// fakeIndex returns canned hits; records the topK it was asked for.
type fakeIndex struct {
	hits      []index.Hit
	lastTopK  int
	callCount int
}

func (f *fakeIndex) Search(_ context.Context, _ string, topK int) ([]index.Hit, error) {
	f.lastTopK = topK
	f.callCount++
	if topK > len(f.hits) {
		topK = len(f.hits)
	}
	return f.hits[:topK], nil
}

func (f *fakeIndex) Size() int { return len(f.hits) }

func rankerStore(t *testing.T) graph.Store {
	t.Helper()
	nodes := []*types.Node{
		{ID: "hub", Label: types.TipLabel, Tip: &types.Tip{Action: "hub", Category: "heating"}},
		{ID: "leaf_a", Label: types.TipLabel, Tip: &types.Tip{Action: "a", Category: "heating"}},
		{ID: "leaf_b", Label: types.TipLabel, Tip: &types.Tip{Action: "b", Category: "heating"}},
		{ID: "leaf_c", Label: types.TipLabel, Tip: &types.Tip{Action: "c", Category: "heating"}},
	}
	edges := []*types.Edge{
		{Source: "leaf_a", Target: "hub", Relationship: types.RelImproves},
		{Source: "leaf_b", Target: "hub", Relationship: types.RelImproves},
		{Source: "leaf_c", Target: "hub", Relationship: types.RelImproves},
	}
	store, err := graph.Load(nodes, edges)
	require.NoError(t, err)
	return store
}

func TestHybridScore(t *testing.T) {
	// similarity 1 maps to 1, so a perfectly central perfect match is 1.
	assert.InDelta(t, 1.0, HybridScore(1, 1), 1e-9)
	// similarity -1 maps to 0.
	assert.InDelta(t, 0.0, HybridScore(-1, 0), 1e-9)
	// the weights are 0.7 similarity, 0.3 centrality.
	assert.InDelta(t, 0.7*0.75+0.3*0.1, HybridScore(0.5, 0.1), 1e-9)
}

func TestHybridScoreMonotonic(t *testing.T) {
	assert.Greater(t, HybridScore(0.8, 0.2), HybridScore(0.5, 0.2), "increasing similarity raises the score")
	assert.Greater(t, HybridScore(0.5, 0.5), HybridScore(0.5, 0.2), "increasing centrality raises the score")
}

func TestRankOversamples(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{hits: []index.Hit{
		{NodeID: "hub", Similarity: 0.9},
		{NodeID: "leaf_a", Similarity: 0.8},
		{NodeID: "leaf_b", Similarity: 0.7},
		{NodeID: "leaf_c", Similarity: 0.6},
	}}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 2, 0)
	require.NoError(t, err)

	// 2*topK raw candidates are pulled so centrality can promote nodes
	// similarity alone would cut.
	assert.Equal(t, 4, idx.lastTopK)
	require.Len(t, scored, 2)
}

func TestRankOversampleCappedAtIndexSize(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{hits: []index.Hit{{NodeID: "hub", Similarity: 0.9}}}

	ranker := NewRanker(store, idx)
	_, err := ranker.Rank(context.Background(), "q", 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.lastTopK)
}

func TestRankCentralityPromotesHub(t *testing.T) {
	store := rankerStore(t)
	// The hub trails slightly on similarity but its centrality advantage
	// must lift it past the leaf.
	idx := &fakeIndex{hits: []index.Hit{
		{NodeID: "leaf_a", Similarity: 0.82},
		{NodeID: "hub", Similarity: 0.80},
	}}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 2, 0)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "hub", scored[0].Node.ID)
}

func TestRankMinScoreFilter(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{hits: []index.Hit{
		{NodeID: "hub", Similarity: 0.9},
		{NodeID: "leaf_a", Similarity: -0.9},
	}}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 2, 0.5)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, "hub", scored[0].Node.ID)
	assert.GreaterOrEqual(t, scored[0].Score, 0.5)
}

func TestRankSkipsStaleIDs(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{hits: []index.Hit{
		{NodeID: "deleted_node", Similarity: 0.99},
		{NodeID: "hub", Similarity: 0.5},
	}}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 2, 0)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, "hub", scored[0].Node.ID)
}

func TestRankZeroTopK(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 0, 0)
	require.NoError(t, err)
	assert.Nil(t, scored)
	assert.Zero(t, idx.callCount)
}

func TestRankTopKLargerThanGraph(t *testing.T) {
	store := rankerStore(t)
	idx := &fakeIndex{hits: []index.Hit{
		{NodeID: "hub", Similarity: 0.9},
		{NodeID: "leaf_a", Similarity: 0.8},
		{NodeID: "leaf_b", Similarity: 0.7},
	}}

	ranker := NewRanker(store, idx)
	scored, err := ranker.Rank(context.Background(), "q", 50, 0)
	require.NoError(t, err)
	assert.Len(t, scored, 3, "returns what exists, no padding, no error")
}
