package models

import "gorm.io/gorm"

// DailyGoal holds each user's daily nutrient-intake targets. The advisory
// generator uses these for the "remaining budget" figures in its prompt.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // e.g. 2000 kcal
	Protein  float64 // e.g. 100 g
	Carbs    float64 // e.g. 250 g
	Fat      float64 // e.g. 65 g
	SatFat   float64 // e.g. 20 g
	Sodium   float64 // e.g. 2300 mg
	Sugar    float64 // e.g. 50 g
}
