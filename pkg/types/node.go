package types

import "fmt"

// Label identifies the kind of a graph node.
type Label string

const (
	// CategoryLabel marks an energy consumption category (heating, lighting, ...).
	CategoryLabel Label = "Category"
	// FuelTypeLabel marks a fuel type (gas, electricity).
	FuelTypeLabel Label = "FuelType"
	// TipLabel marks an actionable energy-saving tip.
	TipLabel Label = "Tip"
	// HouseTypeLabel marks a dwelling type (flat, terraced, ...).
	HouseTypeLabel Label = "HouseType"
)

// Difficulty levels a tip can carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Category holds the properties of a Category node. Figures are UK
// per-home annual averages.
type Category struct {
	Name       string  `json:"name" yaml:"name"`
	KWHPerHome float64 `json:"kwh_per_home" yaml:"kwh_per_home"`
	TotalGWH   float64 `json:"total_gwh" yaml:"total_gwh"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	FuelType   string  `json:"fuel_type" yaml:"fuel_type"`
}

// FuelType holds the properties of a FuelType node.
type FuelType struct {
	Name          string  `json:"name" yaml:"name"`
	RateGBPPerKWH float64 `json:"rate_gbp_kwh" yaml:"rate_gbp_kwh"`
	CO2KgPerKWH   float64 `json:"co2_kg_kwh" yaml:"co2_kg_kwh"`
}

// Tip holds the properties of a Tip node. Savings are annual and
// unpersonalized; personalization happens per query.
type Tip struct {
	Action      string  `json:"action" yaml:"action"`
	Description string  `json:"description" yaml:"description"`
	SavingsGBP  float64 `json:"savings_gbp" yaml:"savings_gbp"`
	SavingsCO2  float64 `json:"savings_co2" yaml:"savings_co2"`
	Difficulty  string  `json:"difficulty" yaml:"difficulty"`
	Category    string  `json:"category" yaml:"category"`
}

// HouseType holds the properties of a HouseType node. HeatingFactor
// scales heating-category savings for this dwelling type and stays
// within [0.8, 1.2] for the seed dataset.
type HouseType struct {
	Type             string  `json:"type" yaml:"type"`
	AvgSizeSqm       float64 `json:"avg_size_sqm" yaml:"avg_size_sqm"`
	TypicalOccupants int     `json:"typical_occupants" yaml:"typical_occupants"`
	HeatingFactor    float64 `json:"heating_kwh_factor" yaml:"heating_kwh_factor"`
}

// Node is a labeled node in the knowledge graph. Exactly one of the
// label-specific fields is populated, matching Label.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label Label  `json:"label" yaml:"label"`

	Category  *Category  `json:"category,omitempty" yaml:"category,omitempty"`
	FuelType  *FuelType  `json:"fuel_type,omitempty" yaml:"fuel_type,omitempty"`
	Tip       *Tip       `json:"tip,omitempty" yaml:"tip,omitempty"`
	HouseType *HouseType `json:"house_type,omitempty" yaml:"house_type,omitempty"`
}

// Name returns the human-readable name for the node: category or fuel
// name, tip action, or house type. Falls back to the ID.
func (n *Node) Name() string {
	switch n.Label {
	case CategoryLabel:
		if n.Category != nil {
			return n.Category.Name
		}
	case FuelTypeLabel:
		if n.FuelType != nil {
			return n.FuelType.Name
		}
	case TipLabel:
		if n.Tip != nil {
			return n.Tip.Action
		}
	case HouseTypeLabel:
		if n.HouseType != nil {
			return n.HouseType.Type
		}
	}
	return n.ID
}

// Validate checks that the node carries an ID, a known label, and the
// matching label-specific properties.
func (n *Node) Validate() error {
	if n.ID == "" {
		return ErrEmptyID
	}
	switch n.Label {
	case CategoryLabel:
		if n.Category == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingProperties)
		}
	case FuelTypeLabel:
		if n.FuelType == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingProperties)
		}
	case TipLabel:
		if n.Tip == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingProperties)
		}
		switch n.Tip.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard, "":
		default:
			return fmt.Errorf("node %s: unknown difficulty %q", n.ID, n.Tip.Difficulty)
		}
	case HouseTypeLabel:
		if n.HouseType == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingProperties)
		}
	default:
		return fmt.Errorf("node %s: unknown label %q", n.ID, n.Label)
	}
	return nil
}
