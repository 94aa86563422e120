package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/types"
)

func tip(action string, savings float64, difficulty string) types.PersonalizedTip {
	return types.PersonalizedTip{
		Action:                 action,
		PersonalizedSavingsGBP: savings,
		PersonalizedSavingsCO2: savings * 2,
		Difficulty:             difficulty,
		Category:               "heating",
	}
}

func TestNilClientUsesFallback(t *testing.T) {
	g := New(nil, Config{}, nil)
	result := &types.RetrievalResult{
		PersonalizedTips: []types.PersonalizedTip{tip("Lower thermostat", 36, "easy")},
	}

	text := g.Generate(context.Background(), "how do I save on heating?", types.QueryContext{}, result)
	assert.Contains(t, text, "Based on UK ECUK 2025 data")
	assert.Contains(t, text, "Lower thermostat")
	assert.Contains(t, text, "Saves: £36/year")
}

func TestFallbackImpactTiers(t *testing.T) {
	g := New(nil, Config{}, nil)
	result := &types.RetrievalResult{
		PersonalizedTips: []types.PersonalizedTip{
			tip("Insulate loft", 51, "hard"),
			tip("Bleed radiators", 21, "easy"),
			tip("Close curtains at dusk", 20, "easy"),
		},
	}

	text := g.Generate(context.Background(), "q", types.QueryContext{}, result)
	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.Contains(t, text, "Insulate loft")
	assert.Contains(t, text, "Impact: HIGH")
	assert.Contains(t, text, "Impact: MEDIUM")
	assert.Contains(t, text, "Impact: LOW")
}

func TestFallbackCapsAtFiveTips(t *testing.T) {
	g := New(nil, Config{}, nil)
	result := &types.RetrievalResult{}
	for i := 0; i < 8; i++ {
		result.PersonalizedTips = append(result.PersonalizedTips, tip("tip", 10, "easy"))
	}

	text := g.Generate(context.Background(), "q", types.QueryContext{}, result)
	assert.Contains(t, text, "5. tip")
	assert.NotContains(t, text, "6. tip")
}

func TestFallbackEmptyResult(t *testing.T) {
	g := New(nil, Config{}, nil)

	text := g.Generate(context.Background(), "q", types.QueryContext{}, &types.RetrievalResult{})
	assert.Contains(t, text, "couldn't find recommendations")

	text = g.Generate(context.Background(), "q", types.QueryContext{}, nil)
	assert.Contains(t, text, "couldn't find recommendations")
}

func TestBuildPromptIncludesContext(t *testing.T) {
	result := &types.RetrievalResult{
		ContextText: "User's house type: flat",
		PersonalizedTips: []types.PersonalizedTip{
			tip("Lower thermostat", 36, "easy"),
		},
	}
	qctx := types.QueryContext{HouseType: "flat", Bedrooms: 2, Category: "heating"}

	prompt := buildPrompt("high heating bills", qctx, result)
	assert.Contains(t, prompt, "User Query: high heating bills")
	assert.Contains(t, prompt, "- House type: flat")
	assert.Contains(t, prompt, "- Bedrooms: 2")
	assert.Contains(t, prompt, "- Energy category of interest: heating")
	assert.Contains(t, prompt, "User's house type: flat")
	assert.Contains(t, prompt, "1. Lower thermostat - Saves £36/year")
}

func TestNewDefaults(t *testing.T) {
	g := New(nil, Config{}, nil)
	assert.NotEmpty(t, g.config.Model)
	assert.Equal(t, 500, g.config.MaxTokens)
}
