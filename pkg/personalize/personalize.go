package personalize

import (
	"math"
	"sort"

	"github.com/dilshankm/echo-home/pkg/types"
)

// HeatingCategory is the tip category scaled by house heating factors.
const HeatingCategory = "heating"

// difficultyWeights divides savings into ROI. Unknown difficulties get
// the medium weight.
var difficultyWeights = map[string]float64{
	types.DifficultyEasy:   1,
	types.DifficultyMedium: 2,
	types.DifficultyHard:   3,
}

const defaultDifficultyWeight = 2

// HouseFactors resolves a house type name to its heating factor.
// Implemented by the seed dataset; a nil resolver disables scaling.
type HouseFactors interface {
	HeatingFactor(houseType string) (float64, bool)
}

// Personalizer computes PersonalizedTips for a query context.
type Personalizer struct {
	factors HouseFactors
}

// New builds a Personalizer over the given factor source.
func New(factors HouseFactors) *Personalizer {
	return &Personalizer{factors: factors}
}

// Personalize converts Tip nodes into PersonalizedTips for the given
// context. Heating tips with a known house type scale their savings by
// the heating factor and round; anything else keeps raw savings. Tips
// come back sorted by ROI descending, ties keeping input order.
// Non-Tip nodes in the input are ignored.
func (p *Personalizer) Personalize(nodes []*types.Node, qctx types.QueryContext) []types.PersonalizedTip {
	factor, haveFactor := 0.0, false
	if p.factors != nil && qctx.HouseType != "" {
		factor, haveFactor = p.factors.HeatingFactor(qctx.HouseType)
	}

	var tips []types.PersonalizedTip
	for _, node := range nodes {
		if node.Label != types.TipLabel || node.Tip == nil {
			continue
		}
		t := node.Tip

		pt := types.PersonalizedTip{
			ID:          node.ID,
			Action:      t.Action,
			Description: t.Description,
			SavingsGBP:  t.SavingsGBP,
			SavingsCO2:  t.SavingsCO2,
			Difficulty:  t.Difficulty,
			Category:    t.Category,

			PersonalizedSavingsGBP: t.SavingsGBP,
			PersonalizedSavingsCO2: t.SavingsCO2,
		}
		if haveFactor && t.Category == HeatingCategory {
			pt.PersonalizedSavingsGBP = math.Round(t.SavingsGBP * factor)
			pt.PersonalizedSavingsCO2 = math.Round(t.SavingsCO2 * factor)
		}

		weight, ok := difficultyWeights[t.Difficulty]
		if !ok {
			weight = defaultDifficultyWeight
		}
		pt.ROI = pt.PersonalizedSavingsGBP / weight

		tips = append(tips, pt)
	}

	sort.SliceStable(tips, func(i, j int) bool { return tips[i].ROI > tips[j].ROI })
	return tips
}
