package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dilshankm/echo-home/pkg/types"
)

// Keyword tables for entity extraction. Order inside each list matters
// only for bedrooms; the maps are scanned in a fixed slice order so
// extraction stays deterministic.

type patternSet struct {
	name     string
	keywords []string
}

var houseTypePatterns = []patternSet{
	{"flat", []string{"flat", "apartment", "studio"}},
	{"terraced", []string{"terraced", "row house", "townhouse"}},
	{"semi_detached", []string{"semi-detached", "semi detached", "semi"}},
	{"detached", []string{"detached", "house"}},
}

var categoryPatterns = []patternSet{
	{"heating", []string{"heating", "heat", "thermostat", "warm", "cold", "central heating"}},
	{"lighting", []string{"light", "lighting", "bulb", "lamp", "lights"}},
	{"appliances", []string{"appliance", "fridge", "freezer", "washing machine", "dishwasher", "dryer"}},
	{"water", []string{"water", "hot water", "shower", "bath", "tap", "boiler"}},
	{"cooking", []string{"cooking", "cook", "oven", "hob", "stove", "kettle"}},
}

var intentPatterns = []patternSet{
	{"cost_reduction", []string{"reduce", "lower", "save", "cut", "cheaper", "bills", "cost", "money"}},
	{"environmental", []string{"co2", "carbon", "emission", "environment", "green", "eco"}},
	{"quick_wins", []string{"quick", "easy", "fast", "simple", "quick wins"}},
	{"upgrade", []string{"upgrade", "replace", "new", "install", "buy"}},
	{types.DefaultIntent, []string{"tips", "advice", "recommend", "help", "suggest"}},
}

var problemPatterns = []patternSet{
	{"high_bills", []string{"high", "expensive", "too much", "costing", "bill", "spending"}},
	{"inefficient", []string{"inefficient", "waste", "wasting", "too much energy"}},
	{"old_equipment", []string{"old", "aging", "broken", "needs replacing"}},
}

var bedroomPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*-?\s*bed`),
	regexp.MustCompile(`bedroom[s]?\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*bedroom`),
}

// Analyzer extracts a QueryContext from free text.
type Analyzer struct{}

// New returns a pattern-matching Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts entities, intent and urgency from the query. Intent
// defaults to general advice, urgency to medium unless the query
// signals pressure (high bills, waste, or explicit haste).
func (a *Analyzer) Analyze(query string) types.QueryContext {
	lower := strings.ToLower(query)

	qctx := types.QueryContext{
		HouseType: firstMatch(houseTypePatterns, lower),
		Bedrooms:  extractBedrooms(lower),
		Category:  firstMatch(categoryPatterns, lower),
		Problem:   firstMatch(problemPatterns, lower),
		Intent:    bestIntent(lower),
		Urgency:   types.DefaultUrgency,
	}

	switch qctx.Problem {
	case "high_bills", "inefficient":
		qctx.Urgency = "high"
	default:
		for _, word := range []string{"quick", "fast", "urgent"} {
			if strings.Contains(lower, word) {
				qctx.Urgency = "high"
				break
			}
		}
	}
	return qctx.WithDefaults()
}

// EnhanceQuery appends extracted entities to the raw query text so the
// embedding sees both the user's words and the resolved entities.
func EnhanceQuery(query string, qctx types.QueryContext) string {
	parts := []string{query}
	if qctx.Category != "" {
		parts = append(parts, "energy category: "+qctx.Category)
	}
	if qctx.HouseType != "" {
		parts = append(parts, "house type: "+qctx.HouseType)
	}
	if qctx.Problem != "" {
		parts = append(parts, "problem: "+qctx.Problem)
	}
	return strings.Join(parts, " ")
}

func firstMatch(sets []patternSet, query string) string {
	for _, set := range sets {
		for _, kw := range set.keywords {
			if strings.Contains(query, kw) {
				return set.name
			}
		}
	}
	return ""
}

// bestIntent scores each intent by keyword hits and keeps the highest;
// earlier table entries win ties.
func bestIntent(query string) string {
	best, bestScore := types.DefaultIntent, 0
	for _, set := range intentPatterns {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(query, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = set.name, score
		}
	}
	return best
}

func extractBedrooms(query string) int {
	for _, re := range bedroomPatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}
