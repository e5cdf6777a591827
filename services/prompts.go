package services

import (
	"fmt"
	"strings"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// Prompt builders are pure functions: all state comes in through arguments.

func BuildValidatePrompt(text string) string {
	return `You are a food-input validator for a Malaysian meal-logging app.

Decide whether the text below names a food or drink.
- Output MUST be valid JSON, starting with { and ending with }.
- NO markdown, NO explanations, NO extra text.

Required JSON schema:
{
  "is_food": boolean,
  "cleaned_name": "string (canonical dish name, empty if not food)",
  "category": "string (cuisine or food category, empty if unknown)",
  "suggestion": "string (if not food: a short hint of what the user could type instead)"
}

TEXT:
` + text
}

func BuildIdentifyPrompt(text string) string {
	subject := "the meal in the attached photo"
	if text != "" {
		subject = fmt.Sprintf("the meal described as %q", text)
	}
	return fmt.Sprintf(`You are a nutrition estimation engine for Malaysian and Southeast Asian food.

Identify %s and estimate its nutrition for one typical serving.
- Output MUST be valid JSON, starting with { and ending with }.
- NO markdown, NO explanations, NO extra text.
- All nutrient numbers are for the whole serving. Grams unless noted.

Required JSON schema:
{
  "candidate_name": "string",
  "category": "string (cuisine, e.g. malay, chinese, indian, western)",
  "confidence": number between 0 and 1,
  "detected_protein": "one of: chicken, beef, pork, fish, seafood, egg, tofu, ambiguous_red_meat, none",
  "nutrients": {
    "calories": number, "protein": number, "carbs": number, "fat": number,
    "saturated_fat": number, "sodium": number (mg), "sugar": number,
    "cholesterol": number (mg), "phosphorus": number (mg),
    "potassium": number (mg), "fiber": number
  },
  "detected_components": [
    {
      "name": "string",
      "scalable": boolean (false for drinks and fixed-serving sides),
      "nutrients": { same schema as above }
    }
  ],
  "portion_estimate": {
    "size_category": "small | regular | large",
    "multiplier": number (1.0 = typical serving),
    "reasoning": "string"
  }
}`, subject)
}

// BuildAdvisoryPrompt seeds the advisory call with the portion-adjusted meal,
// the per-condition ratings already computed deterministically, and the daily
// ledger with remaining budgets. The model writes the narrative; it never
// overrides the ratings.
func BuildAdvisoryPrompt(meal models.PortionAdjustedMeal, food models.ResolvedFood,
	ratings []models.ConditionRating, ledger models.DailyLedgerSnapshot,
	targets models.DailyGoal) string {

	var sb strings.Builder
	sb.WriteString("You are a cautious dietitian assistant for users managing chronic conditions.\n\n")
	fmt.Fprintf(&sb, "Meal: %s (%s), %.1fx portion.\n", food.Name, food.Category, meal.Multiplier)
	fmt.Fprintf(&sb, "This meal: %.0f kcal, %.1fg carbs, %.1fg sugar, %.0fmg sodium, %.1fg saturated fat, %.1fg protein.\n",
		meal.Totals.Calories, meal.Totals.Carbs, meal.Totals.Sugar, meal.Totals.Sodium, meal.Totals.SatFat, meal.Totals.Protein)
	fmt.Fprintf(&sb, "Already eaten today (%d meals): %.0f kcal, %.0fmg sodium, %.1fg sugar.\n",
		ledger.MealCount, ledger.Totals.Calories, ledger.Totals.Sodium, ledger.Totals.Sugar)

	after := ledger.Totals.Add(meal.Totals)
	if targets.Calories > 0 {
		fmt.Fprintf(&sb, "After this meal the user will have consumed %.0f of a %.0f kcal daily target (%.0f kcal remaining).\n",
			after.Calories, targets.Calories, targets.Calories-after.Calories)
	}
	if targets.Sodium > 0 {
		fmt.Fprintf(&sb, "Sodium after this meal: %.0f of %.0f mg daily limit.\n", after.Sodium, targets.Sodium)
	}

	if len(ratings) > 0 {
		sb.WriteString("Condition ratings (already decided, do not change them):\n")
		for _, r := range ratings {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n", r.Condition, r.Rating, r.Metric)
		}
	}

	sb.WriteString(`
Write advice for this user.
- Output MUST be valid JSON, starting with { and ending with }.
- NO markdown, NO extra text.

Required JSON schema:
{
  "main_advice": "2-3 sentences on this meal in the context of the rest of the day",
  "tip": "one short practical swap or portion tip"
}`)
	return sb.String()
}
