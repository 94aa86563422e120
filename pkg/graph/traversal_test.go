package graph

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/types"
)

// chainStore builds a -> b -> c -> d with a shortcut a -> c.
func chainStore(t *testing.T) *MemoryStore {
	t.Helper()
	nodes := []*types.Node{
		tipNode("a", "heating"),
		tipNode("b", "heating"),
		tipNode("c", "heating"),
		tipNode("d", "heating"),
	}
	edges := []*types.Edge{
		{Source: "a", Target: "b", Relationship: types.RelImproves},
		{Source: "b", Target: "c", Relationship: types.RelImproves},
		{Source: "c", Target: "d", Relationship: types.RelImproves},
		{Source: "a", Target: "c", Relationship: types.RelImproves},
	}
	store, err := Load(nodes, edges)
	require.NoError(t, err)
	return store
}

func nodeIDs(sub *types.Subgraph) []string {
	ids := make([]string, len(sub.Nodes))
	for i, n := range sub.Nodes {
		ids[i] = n.ID
	}
	sort.Strings(ids)
	return ids
}

func TestKHopZero(t *testing.T) {
	store := chainStore(t)

	sub, err := store.KHopSubgraph(context.Background(), []string{"a", "c"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, nodeIDs(sub))
	assert.Empty(t, sub.Edges)
}

func TestKHopOneHop(t *testing.T) {
	store := chainStore(t)

	sub, err := store.KHopSubgraph(context.Background(), []string{"a"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nodeIDs(sub))
	assert.Len(t, sub.Edges, 2)
}

func TestKHopBidirectional(t *testing.T) {
	store := chainStore(t)

	// From b, one hop must reach a over the incoming edge.
	sub, err := store.KHopSubgraph(context.Background(), []string{"b"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nodeIDs(sub))
}

func TestKHopMonotonic(t *testing.T) {
	store := chainStore(t)
	ctx := context.Background()

	var prev int
	for k := 0; k <= 3; k++ {
		sub, err := store.KHopSubgraph(ctx, []string{"a"}, k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(sub.Nodes), prev, "k=%d shrank the subgraph", k)
		prev = len(sub.Nodes)
	}
}

func TestKHopUnknownSeedSkipped(t *testing.T) {
	store := chainStore(t)

	sub, err := store.KHopSubgraph(context.Background(), []string{"a", "zz"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nodeIDs(sub))

	empty, err := store.KHopSubgraph(context.Background(), []string{"zz"}, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
	assert.Empty(t, empty.Edges)
}

func TestKHopEdgesDeduplicated(t *testing.T) {
	store := chainStore(t)

	// Expanding far enough to traverse every edge from both ends must
	// still report each edge once.
	sub, err := store.KHopSubgraph(context.Background(), []string{"a", "d"}, 3)
	require.NoError(t, err)
	assert.Len(t, sub.Nodes, 4)
	assert.Len(t, sub.Edges, 4)
}

func TestFindPathsUndirected(t *testing.T) {
	store := chainStore(t)

	paths, err := store.FindPaths(context.Background(), "a", "d", 4)
	require.NoError(t, err)

	// Edge direction is ignored: both routes to d count.
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"a", "b", "c", "d"}, paths[0])
	assert.Equal(t, []string{"a", "c", "d"}, paths[1])
}

func TestFindPathsRespectsMaxLength(t *testing.T) {
	store := chainStore(t)

	paths, err := store.FindPaths(context.Background(), "a", "d", 2)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"a", "c", "d"}, paths[0])

	none, err := store.FindPaths(context.Background(), "a", "d", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindPathsUnknownEndpoint(t *testing.T) {
	store := chainStore(t)

	paths, err := store.FindPaths(context.Background(), "a", "zz", 4)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = store.FindPaths(context.Background(), "zz", "a", 4)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFindPathsCapped(t *testing.T) {
	// A bipartite fan: s -> m00..m11 -> t gives 12 two-edge paths.
	nodes := []*types.Node{tipNode("s", "heating"), tipNode("t", "heating")}
	var edges []*types.Edge
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("m%02d", i)
		nodes = append(nodes, tipNode(id, "heating"))
		edges = append(edges,
			&types.Edge{Source: "s", Target: id, Relationship: types.RelImproves},
			&types.Edge{Source: id, Target: "t", Relationship: types.RelImproves},
		)
	}
	store, err := Load(nodes, edges)
	require.NoError(t, err)

	paths, err := store.FindPaths(context.Background(), "s", "t", 4)
	require.NoError(t, err)
	require.Len(t, paths, MaxPaths)

	// The cap keeps the lexicographically first paths: middles m00..m09.
	for i, p := range paths {
		require.Len(t, p, 3)
		assert.Equal(t, fmt.Sprintf("m%02d", i), p[1])
	}
}

func TestFindPathsDeterministicOrder(t *testing.T) {
	store := chainStore(t)
	ctx := context.Background()

	first, err := store.FindPaths(ctx, "a", "d", 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := store.FindPaths(ctx, "a", "d", 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
