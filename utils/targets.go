package utils

import (
	"errors"
	"time"
)

func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.YearDay() < birthday.YearDay() {
		age--
	}
	return age
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// RecommendedCalories estimates a daily calorie target via Mifflin-St Jeor
// with a light-activity factor. Returns 2000 when inputs are missing.
func RecommendedCalories(sex string, ageYears int, heightCm, weightKg float64) float64 {
	if ageYears <= 0 || heightCm <= 0 || weightKg <= 0 {
		return 2000
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr * 1.375
}

// DefaultTargets derives a macro split and sodium/sugar limits from a calorie
// target: 50/20/30 carb/protein/fat, sat fat <10% kcal, sugar <10% kcal,
// sodium at the 2300 mg CDRR.
func DefaultTargets(calories float64) (protein, carbs, fat, satFat, sodium, sugar float64) {
	if calories <= 0 {
		calories = 2000
	}
	carbs = 0.50 * calories / 4.0
	protein = 0.20 * calories / 4.0
	fat = 0.30 * calories / 9.0
	satFat = 0.10 * calories / 9.0
	sodium = 2300
	sugar = 0.10 * calories / 4.0
	return
}
