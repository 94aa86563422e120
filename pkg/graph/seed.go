package graph

import (
	"fmt"

	"github.com/dilshankm/echo-home/pkg/types"
)

// Seed dataset derived from UK ECUK 2025 household energy statistics.
// Categories carry per-home annual kWh figures; tips carry typical
// annual savings in GBP and kg CO2.

var seedCategories = []types.Category{
	{Name: "heating", KWHPerHome: 744, TotalGWH: 20838, Percentage: 61, FuelType: "gas"},
	{Name: "lighting", KWHPerHome: 12, TotalGWH: 340, Percentage: 1, FuelType: "electricity"},
	{Name: "appliances", KWHPerHome: 203, TotalGWH: 5689, Percentage: 17, FuelType: "electricity"},
	{Name: "water", KWHPerHome: 210, TotalGWH: 5871, Percentage: 17, FuelType: "gas"},
	{Name: "cooking", KWHPerHome: 45, TotalGWH: 1256, Percentage: 4, FuelType: "electricity"},
}

var seedFuels = []types.FuelType{
	{Name: "gas", RateGBPPerKWH: 0.06, CO2KgPerKWH: 0.184},
	{Name: "electricity", RateGBPPerKWH: 0.24, CO2KgPerKWH: 0.233},
}

type seedTip struct {
	id  string
	tip types.Tip
}

var seedTips = []seedTip{
	// Heating
	{"tip_thermostat", types.Tip{Action: "Lower thermostat by 1°C", Description: "Reduces heating consumption by 10% without significant comfort loss", SavingsGBP: 45, SavingsCO2: 83, Difficulty: types.DifficultyEasy, Category: "heating"}},
	{"tip_smart_thermostat", types.Tip{Action: "Install smart thermostat", Description: "Automated scheduling reduces heating when away, saving up to 15%", SavingsGBP: 78, SavingsCO2: 144, Difficulty: types.DifficultyMedium, Category: "heating"}},
	{"tip_insulation", types.Tip{Action: "Improve loft insulation", Description: "Add 270mm insulation to reduce heat loss through roof by 25%", SavingsGBP: 150, SavingsCO2: 277, Difficulty: types.DifficultyHard, Category: "heating"}},
	{"tip_draught_proof", types.Tip{Action: "Draught proof windows and doors", Description: "Seal gaps around windows and doors to prevent heat escape", SavingsGBP: 30, SavingsCO2: 55, Difficulty: types.DifficultyEasy, Category: "heating"}},
	{"tip_radiator_bleed", types.Tip{Action: "Bleed radiators regularly", Description: "Remove air bubbles to ensure efficient heat distribution", SavingsGBP: 12, SavingsCO2: 22, Difficulty: types.DifficultyEasy, Category: "heating"}},
	{"tip_heating_timer", types.Tip{Action: "Use heating timer efficiently", Description: "Program heating to turn off 30 minutes before leaving", SavingsGBP: 25, SavingsCO2: 46, Difficulty: types.DifficultyEasy, Category: "heating"}},
	// Lighting
	{"tip_led_bulbs", types.Tip{Action: "Switch to LED bulbs", Description: "LEDs use 80% less energy than traditional bulbs and last 25x longer", SavingsGBP: 12, SavingsCO2: 22, Difficulty: types.DifficultyEasy, Category: "lighting"}},
	{"tip_turn_off_lights", types.Tip{Action: "Turn off lights when not in use", Description: "Simple habit can reduce lighting costs by 15-20%", SavingsGBP: 8, SavingsCO2: 15, Difficulty: types.DifficultyEasy, Category: "lighting"}},
	{"tip_motion_sensors", types.Tip{Action: "Install motion sensor lights", Description: "Automatic on/off for rooms with intermittent use", SavingsGBP: 5, SavingsCO2: 9, Difficulty: types.DifficultyMedium, Category: "lighting"}},
	// Appliances
	{"tip_washing_cold", types.Tip{Action: "Wash clothes at 30°C", Description: "Modern detergents work at lower temperatures, saving 40% energy", SavingsGBP: 28, SavingsCO2: 32, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	{"tip_dryer_air", types.Tip{Action: "Air dry clothes instead of tumble dryer", Description: "Tumble dryers are one of the most energy-intensive appliances", SavingsGBP: 55, SavingsCO2: 64, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	{"tip_fridge_temp", types.Tip{Action: "Set fridge to 5°C, freezer to -18°C", Description: "Optimal temperatures that don't waste energy being too cold", SavingsGBP: 15, SavingsCO2: 17, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	{"tip_dishwasher_full", types.Tip{Action: "Only run dishwasher when full", Description: "Run full loads to maximize efficiency per wash", SavingsGBP: 18, SavingsCO2: 21, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	{"tip_appliance_upgrade", types.Tip{Action: "Upgrade to A+++ rated appliances", Description: "Newer appliances use 30-50% less energy than older models", SavingsGBP: 65, SavingsCO2: 76, Difficulty: types.DifficultyHard, Category: "appliances"}},
	{"tip_unplug_standby", types.Tip{Action: "Unplug devices on standby", Description: "Standby mode can account for 5-10% of electricity use", SavingsGBP: 35, SavingsCO2: 41, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	{"tip_washing_full", types.Tip{Action: "Wash full loads of laundry", Description: "Running full loads uses less energy per item washed", SavingsGBP: 10, SavingsCO2: 12, Difficulty: types.DifficultyEasy, Category: "appliances"}},
	// Water heating
	{"tip_shorter_showers", types.Tip{Action: "Take shorter showers (5 minutes)", Description: "Reduce shower time from 10 to 5 minutes to cut water heating costs", SavingsGBP: 35, SavingsCO2: 65, Difficulty: types.DifficultyEasy, Category: "water"}},
	{"tip_shower_aerator", types.Tip{Action: "Install low-flow shower head", Description: "Reduce water flow while maintaining pressure, saving water and heating", SavingsGBP: 22, SavingsCO2: 41, Difficulty: types.DifficultyMedium, Category: "water"}},
	{"tip_boiler_temp", types.Tip{Action: "Set boiler temperature to 60°C", Description: "Optimal temperature for hot water without excessive heating", SavingsGBP: 20, SavingsCO2: 37, Difficulty: types.DifficultyEasy, Category: "water"}},
	{"tip_tap_repair", types.Tip{Action: "Fix dripping taps", Description: "A dripping hot tap wastes both water and heating energy", SavingsGBP: 8, SavingsCO2: 15, Difficulty: types.DifficultyEasy, Category: "water"}},
	{"tip_insulate_boiler", types.Tip{Action: "Insulate hot water cylinder", Description: "Cylinder jacket reduces heat loss and saves energy", SavingsGBP: 25, SavingsCO2: 46, Difficulty: types.DifficultyMedium, Category: "water"}},
	{"tip_wash_cold_water", types.Tip{Action: "Use cold water for washing machine when possible", Description: "Cold water cycles use significantly less energy", SavingsGBP: 12, SavingsCO2: 14, Difficulty: types.DifficultyEasy, Category: "water"}},
	// Cooking
	{"tip_lid_pans", types.Tip{Action: "Use lids on pans when cooking", Description: "Lids trap heat and reduce cooking time by 30%", SavingsGBP: 8, SavingsCO2: 9, Difficulty: types.DifficultyEasy, Category: "cooking"}},
	{"tip_oven_door", types.Tip{Action: "Avoid opening oven door frequently", Description: "Each opening loses heat and increases cooking time", SavingsGBP: 5, SavingsCO2: 6, Difficulty: types.DifficultyEasy, Category: "cooking"}},
	{"tip_microwave_over_oven", types.Tip{Action: "Use microwave instead of oven when possible", Description: "Microwaves use 50-80% less energy for reheating", SavingsGBP: 12, SavingsCO2: 14, Difficulty: types.DifficultyEasy, Category: "cooking"}},
	{"tip_kettle_water", types.Tip{Action: "Only boil needed amount of water", Description: "Boiling excess water wastes electricity unnecessarily", SavingsGBP: 6, SavingsCO2: 7, Difficulty: types.DifficultyEasy, Category: "cooking"}},
	{"tip_induction_hob", types.Tip{Action: "Use induction hob over gas", Description: "Induction hobs are more efficient and precise than gas", SavingsGBP: 15, SavingsCO2: 17, Difficulty: types.DifficultyHard, Category: "cooking"}},
	{"tip_batch_cooking", types.Tip{Action: "Cook in batches and reheat", Description: "Cooking larger portions uses energy more efficiently", SavingsGBP: 10, SavingsCO2: 12, Difficulty: types.DifficultyEasy, Category: "cooking"}},
}

var seedHouseTypes = []types.HouseType{
	{Type: "flat", AvgSizeSqm: 800, TypicalOccupants: 2, HeatingFactor: 0.8},
	{Type: "terraced", AvgSizeSqm: 1100, TypicalOccupants: 3, HeatingFactor: 0.9},
	{Type: "semi_detached", AvgSizeSqm: 1400, TypicalOccupants: 3, HeatingFactor: 1.0},
	{Type: "detached", AvgSizeSqm: 1800, TypicalOccupants: 4, HeatingFactor: 1.2},
}

// SeedGraph builds the built-in energy knowledge graph: categories
// linked to their fuel types, tips linked to the category they improve
// and to every house type they suit.
func SeedGraph() ([]*types.Node, []*types.Edge) {
	var nodes []*types.Node
	var edges []*types.Edge

	for i := range seedCategories {
		cat := seedCategories[i]
		nodes = append(nodes, &types.Node{
			ID:       fmt.Sprintf("category_%s", cat.Name),
			Label:    types.CategoryLabel,
			Category: &cat,
		})
		edges = append(edges, &types.Edge{
			Source:       fmt.Sprintf("category_%s", cat.Name),
			Target:       fmt.Sprintf("fuel_%s", cat.FuelType),
			Relationship: types.RelUsesFuel,
		})
	}

	for i := range seedFuels {
		fuel := seedFuels[i]
		nodes = append(nodes, &types.Node{
			ID:       fmt.Sprintf("fuel_%s", fuel.Name),
			Label:    types.FuelTypeLabel,
			FuelType: &fuel,
		})
	}

	for i := range seedTips {
		tip := seedTips[i].tip
		nodes = append(nodes, &types.Node{
			ID:    seedTips[i].id,
			Label: types.TipLabel,
			Tip:   &tip,
		})
		edges = append(edges, &types.Edge{
			Source:       seedTips[i].id,
			Target:       fmt.Sprintf("category_%s", tip.Category),
			Relationship: types.RelImproves,
		})
		for _, house := range seedHouseTypes {
			edges = append(edges, &types.Edge{
				Source:       seedTips[i].id,
				Target:       fmt.Sprintf("house_%s", house.Type),
				Relationship: types.RelSuitableFor,
			})
		}
	}

	for i := range seedHouseTypes {
		house := seedHouseTypes[i]
		nodes = append(nodes, &types.Node{
			ID:        fmt.Sprintf("house_%s", house.Type),
			Label:     types.HouseTypeLabel,
			HouseType: &house,
		})
	}

	return nodes, edges
}

// SeedHouseType returns the seed house type with the given name, or nil.
func SeedHouseType(name string) *types.HouseType {
	for i := range seedHouseTypes {
		if seedHouseTypes[i].Type == name {
			ht := seedHouseTypes[i]
			return &ht
		}
	}
	return nil
}
