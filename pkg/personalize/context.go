package personalize

import (
	"fmt"
	"strings"

	"github.com/dilshankm/echo-home/pkg/types"
)

// Caps on what the rendered context surfaces; anything past these adds
// tokens without adding information for the generator.
const (
	maxContextTips  = 5
	maxExplainNodes = 3
)

// NoMatchExplanation is the explanation text for an empty retrieval.
const NoMatchExplanation = "No matching nodes found"

// HouseFacts resolves a house type name to its full seed record for the
// context text. Optional.
type HouseFacts interface {
	HouseType(name string) *types.HouseType
}

// BuildContext renders the retrieval into deterministic text for the
// response generator: the best-matched category's consumption facts,
// the user's house-type facts when known, the top personalized tips
// (capped at five) and a one-line path count.
func BuildContext(matched []types.ScoredNode, paths [][]string, tips []types.PersonalizedTip, qctx types.QueryContext, houses HouseFacts) string {
	var b strings.Builder
	b.WriteString("Graph analysis results:")

	for _, sn := range matched {
		if sn.Node.Label != types.CategoryLabel || sn.Node.Category == nil {
			continue
		}
		c := sn.Node.Category
		fmt.Fprintf(&b, "\n- Matched category: %s (%.0f kWh/year avg, %.0f%% of home energy)", c.Name, c.KWHPerHome, c.Percentage)
		fmt.Fprintf(&b, "\n- Fuel type: %s", c.FuelType)
		break
	}

	if qctx.HouseType != "" {
		fmt.Fprintf(&b, "\n- User's house type: %s", qctx.HouseType)
		if houses != nil {
			if ht := houses.HouseType(qctx.HouseType); ht != nil {
				fmt.Fprintf(&b, "\n  Typical size: %.0f sqm, occupants: %d", ht.AvgSizeSqm, ht.TypicalOccupants)
			}
		}
	}

	if len(tips) > 0 {
		fmt.Fprintf(&b, "\n\nConnected tips (%d):", len(tips))
		for i, tip := range tips {
			if i >= maxContextTips {
				break
			}
			fmt.Fprintf(&b, "\n- %s: £%.0f/year, %.0f kg CO2/year, difficulty: %s",
				tip.Action, tip.PersonalizedSavingsGBP, tip.PersonalizedSavingsCO2, tip.Difficulty)
		}
	}

	fmt.Fprintf(&b, "\n\nGraph paths: discovered %d connections between concepts.", len(paths))
	return b.String()
}

// BuildExplanation describes the traversal for the diagnostics surface:
// the top matched nodes with their relevance scores and how many
// connecting paths were found. An empty match set yields
// NoMatchExplanation.
func BuildExplanation(matched []types.ScoredNode, paths [][]string) string {
	if len(matched) == 0 {
		return NoMatchExplanation
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Found %d relevant nodes:", len(matched)))
	for i, sn := range matched {
		if i >= maxExplainNodes {
			break
		}
		parts = append(parts, fmt.Sprintf("%d. %s '%s' (relevance: %.2f)", i+1, sn.Node.Label, sn.Node.Name(), sn.Score))
	}
	if len(paths) > 0 {
		parts = append(parts, fmt.Sprintf("Discovered %d connections between concepts, showing how energy-saving tips relate to categories and fuel types.", len(paths)))
	}
	return strings.Join(parts, " ")
}
