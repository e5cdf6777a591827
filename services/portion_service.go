package services

import (
	"strings"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// AdjustPortion recomputes meal totals from the included component set, the
// portion multiplier, and any user-added side items. Pure and deterministic:
// the same inputs always produce the same totals.
//
//	total = (sum of included scalable items) × multiplier + (sum of non-scalable items)
//
// Excluding a component omits it from the sum entirely. Non-scalable items
// (drinks, fixed-serving sides) never follow the multiplier.
func AdjustPortion(food models.ResolvedFood, multiplier float64, excluded []string, addOns []models.MealComponent) models.PortionAdjustedMeal {
	if multiplier <= 0 {
		multiplier = 1.0
	}

	components := food.Components
	if len(components) == 0 {
		// No decomposition available: treat the whole dish as one scalable item.
		components = []models.MealComponent{
			{Name: food.Name, Nutrients: food.Nutrients, Scalable: true},
		}
	}

	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var (
		included    []models.MealComponent
		scalable    models.Nutrients
		nonScalable models.Nutrients
	)
	for _, comp := range components {
		if skip[strings.ToLower(comp.Name)] {
			continue
		}
		included = append(included, comp)
		if comp.Scalable {
			scalable = scalable.Add(comp.Nutrients)
		} else {
			nonScalable = nonScalable.Add(comp.Nutrients)
		}
	}
	for _, add := range addOns {
		if add.Scalable {
			scalable = scalable.Add(add.Nutrients)
		} else {
			nonScalable = nonScalable.Add(add.Nutrients)
		}
	}

	return models.PortionAdjustedMeal{
		Multiplier: multiplier,
		Included:   included,
		Excluded:   excluded,
		AddOns:     addOns,
		Totals:     scalable.Scale(multiplier).Add(nonScalable),
	}
}
