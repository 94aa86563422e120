package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/types"
)

func tipNode(id, category string) *types.Node {
	return &types.Node{
		ID:    id,
		Label: types.TipLabel,
		Tip:   &types.Tip{Action: id, Category: category, Difficulty: types.DifficultyEasy},
	}
}

func categoryNode(id, name string) *types.Node {
	return &types.Node{
		ID:       id,
		Label:    types.CategoryLabel,
		Category: &types.Category{Name: name, FuelType: "gas"},
	}
}

func TestLoadSeedGraph(t *testing.T) {
	store, err := Load(SeedGraph())
	require.NoError(t, err)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)

	// 5 categories, 2 fuels, 28 tips, 4 house types.
	assert.Equal(t, 39, stats.TotalNodes)
	assert.Equal(t, 5, stats.NodeLabels["Category"])
	assert.Equal(t, 2, stats.NodeLabels["FuelType"])
	assert.Equal(t, 28, stats.NodeLabels["Tip"])
	assert.Equal(t, 4, stats.NodeLabels["HouseType"])

	// Every category uses one fuel; every tip improves one category and
	// suits all four house types.
	assert.Equal(t, 5, stats.RelationshipTypes[types.RelUsesFuel])
	assert.Equal(t, 28, stats.RelationshipTypes[types.RelImproves])
	assert.Equal(t, 112, stats.RelationshipTypes[types.RelSuitableFor])
	assert.Equal(t, 145, stats.TotalEdges)
}

func TestLoadSeedGraphEdgesResolve(t *testing.T) {
	nodes, edges := SeedGraph()
	store, err := Load(nodes, edges)
	require.NoError(t, err)

	ctx := context.Background()
	for _, e := range edges {
		src, err := store.GetNode(ctx, e.Source)
		require.NoError(t, err)
		assert.NotNil(t, src, "edge source %s must exist", e.Source)

		dst, err := store.GetNode(ctx, e.Target)
		require.NoError(t, err)
		assert.NotNil(t, dst, "edge target %s must exist", e.Target)
	}
}

func TestLoadDuplicateNodeID(t *testing.T) {
	nodes := []*types.Node{
		tipNode("tip_a", "heating"),
		tipNode("tip_a", "lighting"),
	}

	_, err := Load(nodes, nil)
	require.Error(t, err)

	var schemaErr *types.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "tip_a", schemaErr.NodeID)
}

func TestLoadDanglingEdge(t *testing.T) {
	nodes := []*types.Node{tipNode("tip_a", "heating")}
	edges := []*types.Edge{
		{Source: "tip_a", Target: "category_missing", Relationship: types.RelImproves},
	}

	_, err := Load(nodes, edges)
	require.Error(t, err)

	var schemaErr *types.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "category_missing", schemaErr.NodeID)
}

func TestLoadInvalidNode(t *testing.T) {
	// A Tip node without tip properties fails validation.
	_, err := Load([]*types.Node{{ID: "tip_a", Label: types.TipLabel}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMissingProperties)
}

func TestGetNodeUnknown(t *testing.T) {
	store, err := Load(SeedGraph())
	require.NoError(t, err)

	node, err := store.GetNode(context.Background(), "no_such_node")
	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestGetNodesByLabel(t *testing.T) {
	store, err := Load(SeedGraph())
	require.NoError(t, err)

	houses, err := store.GetNodesByLabel(context.Background(), types.HouseTypeLabel)
	require.NoError(t, err)
	require.Len(t, houses, 4)
	for _, h := range houses {
		assert.Equal(t, types.HouseTypeLabel, h.Label)
		require.NotNil(t, h.HouseType)
		assert.GreaterOrEqual(t, h.HouseType.HeatingFactor, 0.8)
		assert.LessOrEqual(t, h.HouseType.HeatingFactor, 1.2)
	}
}

func TestGetNeighborsRelationshipFilter(t *testing.T) {
	store, err := Load(SeedGraph())
	require.NoError(t, err)
	ctx := context.Background()

	all, err := store.GetNeighbors(ctx, "tip_thermostat", "")
	require.NoError(t, err)
	assert.Len(t, all, 5) // 1 improves + 4 suitable_for

	improves, err := store.GetNeighbors(ctx, "tip_thermostat", types.RelImproves)
	require.NoError(t, err)
	require.Len(t, improves, 1)
	assert.Equal(t, "category_heating", improves[0].Node.ID)

	none, err := store.GetNeighbors(ctx, "no_such_node", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeedHouseType(t *testing.T) {
	flat := SeedHouseType("flat")
	require.NotNil(t, flat)
	assert.Equal(t, 0.8, flat.HeatingFactor)

	assert.Nil(t, SeedHouseType("castle"))
}

func TestMultigraphParallelEdges(t *testing.T) {
	nodes := []*types.Node{
		tipNode("tip_a", "heating"),
		categoryNode("cat_h", "heating"),
	}
	edges := []*types.Edge{
		{Source: "tip_a", Target: "cat_h", Relationship: types.RelImproves},
		{Source: "tip_a", Target: "cat_h", Relationship: types.RelSuitableFor},
	}

	store, err := Load(nodes, edges)
	require.NoError(t, err)

	neighbors, err := store.GetNeighbors(context.Background(), "tip_a", "")
	require.NoError(t, err)
	assert.Len(t, neighbors, 2, "parallel edges surface individually")
}
