package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal: the persisted outcome of an analysis the user confirmed.
// The daily ledger is derived by summing Items over a date window; inserts are
// append-only so concurrent logging by the same user is safe.
type Meal struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	AnalysisID string `gorm:"type:varchar(36);index"`

	Name       string  `gorm:"not null"`
	Category   string
	SourceTier string  `gorm:"size:16"` // curated | generic | inference
	Confidence float64
	Verified   bool

	HalalStatus    string `gorm:"size:16"` // halal | non_halal | unknown
	HalalReason    string
	HalalConfirmed bool // explicit user decision, when one was required

	Multiplier float64
	PhotoURL   string
	AteAt      time.Time `gorm:"index"`
	Items      []MealItem
}

// MealItem stores the nutrition snapshot of one component or add-on.
type MealItem struct {
	gorm.Model
	MealID   uint `gorm:"index"`
	Name     string
	Scalable bool
	AddOn    bool

	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	SatFat      float64
	Sodium      float64
	Sugar       float64
	Cholesterol float64
	Phosphorus  float64
	Potassium   float64
	Fiber       float64
}

// Vector reassembles the item's nutrient columns.
func (it MealItem) Vector() Nutrients {
	return Nutrients{
		Calories:    it.Calories,
		Protein:     it.Protein,
		Carbs:       it.Carbs,
		Fat:         it.Fat,
		SatFat:      it.SatFat,
		Sodium:      it.Sodium,
		Sugar:       it.Sugar,
		Cholesterol: it.Cholesterol,
		Phosphorus:  it.Phosphorus,
		Potassium:   it.Potassium,
		Fiber:       it.Fiber,
	}
}
