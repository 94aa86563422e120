package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dilshankm/echo-home/pkg/types"
)

func TestAnalyzeFullQuery(t *testing.T) {
	a := New()
	qctx := a.Analyze("I have high heating costs in a 2-bed flat")

	assert.Equal(t, "flat", qctx.HouseType)
	assert.Equal(t, 2, qctx.Bedrooms)
	assert.Equal(t, "heating", qctx.Category)
	assert.Equal(t, "high_bills", qctx.Problem)
	assert.Equal(t, "high", qctx.Urgency, "high bills escalate urgency")
}

func TestAnalyzeHouseTypes(t *testing.T) {
	a := New()
	cases := map[string]string{
		"my apartment is cold":                "flat",
		"we live in a terraced property":      "terraced",
		"our semi-detached needs better heat": "semi_detached",
		"a detached home with four bedrooms":  "detached",
	}
	for query, want := range cases {
		assert.Equal(t, want, a.Analyze(query).HouseType, "query: %s", query)
	}
}

func TestAnalyzeBedrooms(t *testing.T) {
	a := New()
	cases := map[string]int{
		"a 3-bed house":        3,
		"my 2 bedroom flat":    2,
		"4 bed detached house": 4,
		"no size mentioned":    0,
	}
	for query, want := range cases {
		assert.Equal(t, want, a.Analyze(query).Bedrooms, "query: %s", query)
	}
}

func TestAnalyzeCategories(t *testing.T) {
	a := New()
	cases := map[string]string{
		"my thermostat is broken":    "heating",
		"which bulb should I buy":    "lighting",
		"the fridge runs constantly": "appliances",
		"long showers every day":     "water",
		"slow cooking on the hob":    "cooking",
	}
	for query, want := range cases {
		assert.Equal(t, want, a.Analyze(query).Category, "query: %s", query)
	}
}

func TestAnalyzeIntent(t *testing.T) {
	a := New()
	assert.Equal(t, "cost_reduction", a.Analyze("how do I cut my bills and save money").Intent)
	assert.Equal(t, "environmental", a.Analyze("lower my carbon emissions").Intent)
	assert.Equal(t, "upgrade", a.Analyze("should I install a new boiler replacement").Intent)
}

func TestAnalyzeDefaults(t *testing.T) {
	a := New()
	qctx := a.Analyze("hmm")

	assert.Equal(t, types.DefaultIntent, qctx.Intent)
	assert.Equal(t, types.DefaultUrgency, qctx.Urgency)
	assert.Empty(t, qctx.HouseType)
	assert.Empty(t, qctx.Category)
}

func TestAnalyzeUrgencyFromHaste(t *testing.T) {
	a := New()
	assert.Equal(t, "high", a.Analyze("any quick ways to improve my lighting").Urgency)
	assert.Equal(t, "medium", a.Analyze("general thoughts on my lighting please").Urgency)
}

func TestEnhanceQuery(t *testing.T) {
	qctx := types.QueryContext{Category: "heating", HouseType: "flat", Problem: "high_bills"}

	enhanced := EnhanceQuery("my bills are huge", qctx)
	assert.Equal(t, "my bills are huge energy category: heating house type: flat problem: high_bills", enhanced)
}

func TestEnhanceQueryNoEntities(t *testing.T) {
	assert.Equal(t, "plain question", EnhanceQuery("plain question", types.QueryContext{}))
}
