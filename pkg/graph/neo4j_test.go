package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/types"
)

func TestEdgeEndpointsResolveFromElementIDs(t *testing.T) {
	idByElement := map[string]string{
		"4:db:0": "category_heating",
		"4:db:7": "fuel_gas",
	}
	rel := dbtype.Relationship{
		StartElementId: "4:db:0",
		EndElementId:   "4:db:7",
		Type:           "USES_FUEL",
		Props:          map[string]any{"weight": int64(1)},
	}

	edge := edgeFromDBRelationship(rel, idByElement)
	assert.Equal(t, "category_heating", edge.Source)
	assert.Equal(t, "fuel_gas", edge.Target)
	assert.Equal(t, "USES_FUEL", edge.Relationship)

	// An endpoint outside the matched paths cannot be resolved.
	orphan := edgeFromDBRelationship(dbtype.Relationship{
		StartElementId: "4:db:99",
		EndElementId:   "4:db:7",
		Type:           "IMPROVES",
	}, idByElement)
	assert.Empty(t, orphan.Source)
	assert.Equal(t, "fuel_gas", orphan.Target)
}

func TestNodeFromDBNode(t *testing.T) {
	node, err := nodeFromDBNode(dbtype.Node{
		ElementId: "4:db:3",
		Labels:    []string{"HouseType"},
		Props: map[string]any{
			"id":                 "house_flat",
			"type":               "flat",
			"avg_size_sqm":       float64(50),
			"typical_occupants":  int64(2),
			"heating_kwh_factor": float64(0.8),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "house_flat", node.ID)
	assert.Equal(t, types.HouseTypeLabel, node.Label)
	require.NotNil(t, node.HouseType)
	assert.Equal(t, "flat", node.HouseType.Type)
	assert.Equal(t, 2, node.HouseType.TypicalOccupants)
	assert.InDelta(t, 0.8, node.HouseType.HeatingFactor, 1e-9)
}

func TestNodeFromDBNodeUnknownLabel(t *testing.T) {
	_, err := nodeFromDBNode(dbtype.Node{
		Labels: []string{"Appliance"},
		Props:  map[string]any{"id": "x"},
	})
	assert.Error(t, err)
}
