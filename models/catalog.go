package models

// DishEntry is one curated catalog row: a hand-audited local dish with its
// nutrient vector, alias keywords, component decomposition and per-condition
// baseline ratings. The curated catalog is static reference data, loaded once
// and read-only at request time.
type DishEntry struct {
	Name     string
	Keywords []string
	Category string

	Nutrients Nutrients
	Serving   string

	// Components should sum to roughly the dish totals; entries without a
	// decomposition are treated as a single scalable item.
	Components []MealComponent

	// Baseline per-condition ratings (safe|caution|limit) curated by the
	// dietitian team; the advisory generator may only tighten these.
	Ratings map[string]string
}
