package graph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/types"
)

func writeGraphFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const yamlGraph = `
nodes:
  - id: category_heating
    label: Category
    properties:
      name: heating
      kwh_per_home: 744
      percentage: 61
      fuel_type: gas
  - id: fuel_gas
    label: FuelType
    properties:
      name: gas
      rate_gbp_kwh: 0.06
      co2_kg_kwh: 0.184
  - id: tip_thermostat
    label: Tip
    properties:
      action: Lower thermostat by 1°C
      savings_gbp: 45
      savings_co2: 83
      difficulty: easy
      category: heating
edges:
  - source: category_heating
    target: fuel_gas
    relationship: USES_FUEL
  - source: tip_thermostat
    target: category_heating
    relationship: IMPROVES
`

const jsonGraph = `{
  "nodes": [
    {"id": "house_flat", "label": "HouseType",
     "properties": {"type": "flat", "avg_size_sqm": 800, "typical_occupants": 2, "heating_kwh_factor": 0.8}}
  ],
  "edges": []
}`

func TestLoadFileYAML(t *testing.T) {
	path := writeGraphFile(t, "graph.yaml", yamlGraph)

	store, err := LoadFile(path)
	require.NoError(t, err)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalNodes)
	assert.Equal(t, 2, stats.TotalEdges)

	tip, err := store.GetNode(ctx, "tip_thermostat")
	require.NoError(t, err)
	require.NotNil(t, tip)
	require.NotNil(t, tip.Tip)
	assert.Equal(t, 45.0, tip.Tip.SavingsGBP)
	assert.Equal(t, types.DifficultyEasy, tip.Tip.Difficulty)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeGraphFile(t, "graph.json", jsonGraph)

	store, err := LoadFile(path)
	require.NoError(t, err)

	house, err := store.GetNode(context.Background(), "house_flat")
	require.NoError(t, err)
	require.NotNil(t, house)
	require.NotNil(t, house.HouseType)
	assert.Equal(t, 0.8, house.HouseType.HeatingFactor)
}

func TestLoadFileUnknownLabel(t *testing.T) {
	path := writeGraphFile(t, "bad.yaml", `
nodes:
  - id: x
    label: Widget
    properties: {}
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown label")
}

func TestLoadFileDanglingEdge(t *testing.T) {
	path := writeGraphFile(t, "dangling.yaml", `
nodes:
  - id: fuel_gas
    label: FuelType
    properties: {name: gas}
edges:
  - source: fuel_gas
    target: nowhere
    relationship: USES_FUEL
`)
	_, err := LoadFile(path)
	require.Error(t, err)

	var schemaErr *types.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
