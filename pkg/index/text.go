package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/types"
)

// maxNeighborContext caps how many 1-hop neighbors contribute to a
// node's rendered text.
const maxNeighborContext = 5

// RenderNode produces the prose representation of a node used for
// embedding. graphContext, when non-empty, appends a summary of the
// node's neighborhood so structurally related nodes embed closer
// together.
func RenderNode(node *types.Node, graphContext string) string {
	var b strings.Builder

	switch node.Label {
	case types.CategoryLabel:
		c := node.Category
		fmt.Fprintf(&b, "Energy category: %s. Consumes %.0f kWh per home annually (%.0f%% of total). Uses fuel type: %s.",
			c.Name, c.KWHPerHome, c.Percentage, c.FuelType)
	case types.FuelTypeLabel:
		f := node.FuelType
		fmt.Fprintf(&b, "Fuel type: %s. Rate: £%.2f/kWh. CO2 emissions: %g kg CO2/kWh.",
			f.Name, f.RateGBPPerKWH, f.CO2KgPerKWH)
	case types.TipLabel:
		t := node.Tip
		fmt.Fprintf(&b, "Energy saving tip: %s. %s Saves £%.0f/year and %.0f kg CO2/year. Difficulty: %s. Improves category: %s.",
			t.Action, t.Description, t.SavingsGBP, t.SavingsCO2, t.Difficulty, t.Category)
	case types.HouseTypeLabel:
		h := node.HouseType
		fmt.Fprintf(&b, "House type: %s. Average size: %.0f sqm. Typical occupants: %d.",
			h.Type, h.AvgSizeSqm, h.TypicalOccupants)
	default:
		fmt.Fprintf(&b, "Node: %s.", node.ID)
	}

	if graphContext != "" {
		fmt.Fprintf(&b, " Graph context: %s", graphContext)
	}
	return b.String()
}

// corpusLabels fixes the order node kinds are rendered in, so the
// index assigns stable positions across rebuilds.
var corpusLabels = []types.Label{
	types.CategoryLabel,
	types.FuelTypeLabel,
	types.TipLabel,
	types.HouseTypeLabel,
}

// RenderCorpus renders every node in the store, producing the ordered
// (id, text) pairs the index build embeds. The neighborhood summary
// lists up to maxNeighborContext outgoing relationships.
func RenderCorpus(ctx context.Context, store graph.Store) ([]string, []string, error) {
	var nodes []*types.Node
	for _, label := range corpusLabels {
		batch, err := store.GetNodesByLabel(ctx, label)
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, batch...)
	}

	ids := make([]string, 0, len(nodes))
	texts := make([]string, 0, len(nodes))

	for _, node := range nodes {
		neighbors, err := store.GetNeighbors(ctx, node.ID, "")
		if err != nil {
			return nil, nil, err
		}
		var parts []string
		for i, nb := range neighbors {
			if i >= maxNeighborContext {
				break
			}
			parts = append(parts, fmt.Sprintf("%s %s: %s", nb.Relationship, nb.Node.Label, nb.Node.Name()))
		}

		ids = append(ids, node.ID)
		texts = append(texts, RenderNode(node, strings.Join(parts, "; ")))
	}
	return ids, texts, nil
}
