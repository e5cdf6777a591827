package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 65)
	require.NoError(t, err)
	assert.InDelta(t, 22.49, bmi, 0.01)

	_, err = CalculateBMI(0, 65)
	assert.Error(t, err)
	_, err = CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity", BMICategory(31.0))
	assert.Equal(t, "Unknown", BMICategory(0))
}

func TestRecommendedCalories(t *testing.T) {
	// Mifflin-St Jeor, male, 30y, 175cm, 70kg: (700 + 1093.75 - 150 + 5) * 1.375
	got := RecommendedCalories("male", 30, 175, 70)
	assert.InDelta(t, 2267.03, got, 0.01)

	female := RecommendedCalories("female", 30, 175, 70)
	assert.Less(t, female, got)

	assert.Equal(t, 2000.0, RecommendedCalories("male", 0, 175, 70), "missing inputs fall back to a generic target")
}

func TestDefaultTargets(t *testing.T) {
	protein, carbs, fat, satFat, sodium, sugar := DefaultTargets(2000)

	assert.InDelta(t, 100, protein, 0.001)
	assert.InDelta(t, 250, carbs, 0.001)
	assert.InDelta(t, 66.67, fat, 0.01)
	assert.InDelta(t, 22.22, satFat, 0.01)
	assert.Equal(t, 2300.0, sodium)
	assert.InDelta(t, 50, sugar, 0.001)

	// Macro energy adds back up to the calorie target.
	assert.InDelta(t, 2000, protein*4+carbs*4+fat*9, 0.1)
}
