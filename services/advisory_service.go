package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// AdvisoryService turns a portion-adjusted meal, the daily ledger, and the
// user's active conditions into traffic-light ratings, a glucose-impact
// estimate, and narrative advice. The ratings and the glucose classifier are
// deterministic; only the narrative comes from the inference service, and a
// templated fallback guarantees the pipeline never returns advice-less output.
type AdvisoryService struct {
	inference InferenceClient
}

func NewAdvisoryService(inference InferenceClient) *AdvisoryService {
	return &AdvisoryService{inference: inference}
}

const (
	RatingSafe    = "safe"
	RatingCaution = "caution"
	RatingLimit   = "limit"
)

// conditionAliases maps declared condition strings onto the four families the
// threshold table knows.
var conditionAliases = map[string]string{
	"diabetes": "diabetes", "prediabetes": "diabetes", "t2dm": "diabetes",
	"diabetic": "diabetes", "kencing manis": "diabetes",
	"hypertension": "hypertension", "high blood pressure": "hypertension",
	"darah tinggi": "hypertension",
	"dyslipidemia": "dyslipidemia", "cholesterol": "dyslipidemia",
	"high cholesterol": "dyslipidemia", "hyperlipidemia": "dyslipidemia",
	"ckd": "ckd", "kidney disease": "ckd", "chronic kidney disease": "ckd",
	"renal": "ckd",
}

// Dishes with known outsized glycemic impact. A name match always outranks the
// macro fallback: named dishes carry preparation knowledge raw macros miss.
var veryHighGlucoseDishes = []string{
	"teh tarik", "milo", "cendol", "sirap", "bandung", "sugarcane",
	"kuih", "bubble tea", "condensed milk",
}
var highGlucoseDishes = []string{
	"nasi lemak", "roti canai", "char kway teow", "fried rice", "nasi goreng",
	"mee goreng", "white rice", "maggi", "wantan mee", "nasi minyak",
}

// Generate produces the full advisory. Inference failure or unparsable output
// degrades to the deterministic template; it never fails the request.
func (s *AdvisoryService) Generate(ctx context.Context, food models.ResolvedFood,
	meal models.PortionAdjustedMeal, ledger models.DailyLedgerSnapshot,
	targets models.DailyGoal, conditions []string) models.AdvisoryResult {

	ratings := RateConditions(conditions, meal.Totals, food.BaselineRatings)
	glucose := ClassifyGlucoseImpact(food.Name, meal.Totals)

	result := models.AdvisoryResult{
		Ratings: ratings,
		Glucose: glucose,
	}

	prompt := BuildAdvisoryPrompt(meal, food, ratings, ledger, targets)
	out, err := s.inference.Generate(ctx, prompt)
	if err == nil {
		var parsed struct {
			MainAdvice string `json:"main_advice"`
			Tip        string `json:"tip"`
		}
		if jerr := json.Unmarshal([]byte(stripJSONFences(out)), &parsed); jerr == nil &&
			strings.TrimSpace(parsed.MainAdvice) != "" {
			result.MainAdvice = strings.TrimSpace(parsed.MainAdvice)
			result.Tip = strings.TrimSpace(parsed.Tip)
			return result
		}
	}

	result.MainAdvice, result.Tip = fallbackAdvice(food, meal, ratings, ledger, targets)
	result.Fallback = true
	return result
}

// RateConditions applies the fixed per-condition threshold table to the
// portion-adjusted totals. Curated baseline ratings may tighten the outcome
// but never relax it.
func RateConditions(conditions []string, totals models.Nutrients, baseline map[string]string) []models.ConditionRating {
	seen := make(map[string]bool, 4)
	var out []models.ConditionRating
	for _, raw := range conditions {
		fam, ok := conditionAliases[strings.ToLower(strings.TrimSpace(raw))]
		if !ok || seen[fam] {
			continue
		}
		seen[fam] = true

		r := rateCondition(fam, totals)
		if b, ok := baseline[fam]; ok && severity(b) > severity(r.Rating) {
			r.Rating = b
			r.Explanation += " (tightened by curated dish rating)"
		}
		out = append(out, r)
	}
	return out
}

func rateCondition(family string, n models.Nutrients) models.ConditionRating {
	switch family {
	case "diabetes":
		switch {
		case n.Carbs > 75 || n.Sugar > 25:
			return rating(family, RatingLimit, "carbs/sugar",
				fmt.Sprintf("%.0fg carbs and %.0fg sugar in one meal is a heavy glucose load", n.Carbs, n.Sugar))
		case n.Carbs > 45 || n.Sugar > 15:
			return rating(family, RatingCaution, "carbs/sugar",
				fmt.Sprintf("%.0fg carbs is on the high side for one sitting", n.Carbs))
		}
		return rating(family, RatingSafe, "carbs/sugar", "carbohydrate load is moderate")

	case "hypertension":
		switch {
		case n.Sodium > 1000:
			return rating(family, RatingLimit, "sodium",
				fmt.Sprintf("%.0fmg sodium is close to half the 2300mg daily limit", n.Sodium))
		case n.Sodium > 600:
			return rating(family, RatingCaution, "sodium",
				fmt.Sprintf("%.0fmg sodium in one meal adds up quickly", n.Sodium))
		}
		return rating(family, RatingSafe, "sodium", "sodium is within a reasonable per-meal range")

	case "dyslipidemia":
		switch {
		case n.SatFat > 10 || n.Cholesterol > 200:
			return rating(family, RatingLimit, "saturated fat/cholesterol",
				fmt.Sprintf("%.0fg saturated fat and %.0fmg cholesterol exceed per-meal guidance", n.SatFat, n.Cholesterol))
		case n.SatFat > 5 || n.Cholesterol > 100:
			return rating(family, RatingCaution, "saturated fat/cholesterol",
				fmt.Sprintf("%.0fg saturated fat is a notable share of the daily budget", n.SatFat))
		}
		return rating(family, RatingSafe, "saturated fat/cholesterol", "fats are within range")

	case "ckd":
		switch {
		case n.Protein > 35 || n.Phosphorus > 350 || n.Potassium > 800:
			return rating(family, RatingLimit, "protein/phosphorus/potassium",
				fmt.Sprintf("%.0fg protein with %.0fmg phosphorus strains reduced kidney function", n.Protein, n.Phosphorus))
		case n.Protein > 25 || n.Phosphorus > 250 || n.Potassium > 550:
			return rating(family, RatingCaution, "protein/phosphorus/potassium",
				fmt.Sprintf("%.0fg protein is above the usual per-meal range for CKD", n.Protein))
		}
		return rating(family, RatingSafe, "protein/phosphorus/potassium", "renal-relevant nutrients are moderate")
	}
	return rating(family, RatingSafe, "", "no threshold table for this condition")
}

func rating(cond, level, metric, why string) models.ConditionRating {
	return models.ConditionRating{Condition: cond, Rating: level, Metric: metric, Explanation: why}
}

func severity(r string) int {
	switch r {
	case RatingLimit:
		return 2
	case RatingCaution:
		return 1
	}
	return 0
}

// ClassifyGlucoseImpact checks the resolved name against the known-impact dish
// lists first, then falls back to macro thresholds.
func ClassifyGlucoseImpact(name string, n models.Nutrients) models.GlucoseImpact {
	lower := strings.ToLower(name)
	for _, kw := range veryHighGlucoseDishes {
		if strings.Contains(lower, kw) {
			return models.GlucoseImpact{
				Level:      "very_high",
				PeakWindow: "30-60 minutes",
				Reason:     fmt.Sprintf("%q is a known rapid-glucose dish", kw),
			}
		}
	}
	for _, kw := range highGlucoseDishes {
		if strings.Contains(lower, kw) {
			return models.GlucoseImpact{
				Level:      "high",
				PeakWindow: "45-75 minutes",
				Reason:     fmt.Sprintf("%q is typically refined-carb heavy", kw),
			}
		}
	}

	switch {
	case n.Carbs > 90 || n.Sugar > 40:
		return models.GlucoseImpact{Level: "very_high", PeakWindow: "30-60 minutes",
			Reason: fmt.Sprintf("%.0fg carbs / %.0fg sugar", n.Carbs, n.Sugar)}
	case n.Carbs > 60 || n.Sugar > 25:
		return models.GlucoseImpact{Level: "high", PeakWindow: "45-75 minutes",
			Reason: fmt.Sprintf("%.0fg carbs / %.0fg sugar", n.Carbs, n.Sugar)}
	case n.Carbs > 30:
		return models.GlucoseImpact{Level: "moderate", PeakWindow: "60-90 minutes",
			Reason: fmt.Sprintf("%.0fg carbs", n.Carbs)}
	}
	return models.GlucoseImpact{Level: "low", PeakWindow: "90+ minutes",
		Reason: "low carbohydrate content"}
}

// fallbackAdvice is the deterministic template used when the narrative call
// fails or returns something unparsable.
func fallbackAdvice(food models.ResolvedFood, meal models.PortionAdjustedMeal,
	ratings []models.ConditionRating, ledger models.DailyLedgerSnapshot,
	targets models.DailyGoal) (string, string) {

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s adds about %.0f kcal, %.0fg carbs and %.0fmg sodium.",
		capitalize(food.Name), meal.Totals.Calories, meal.Totals.Carbs, meal.Totals.Sodium)

	if targets.Calories > 0 {
		remaining := targets.Calories - ledger.Totals.Calories - meal.Totals.Calories
		if remaining < 0 {
			fmt.Fprintf(&sb, " This puts you about %.0f kcal over today's target.", -remaining)
		} else {
			fmt.Fprintf(&sb, " You have roughly %.0f kcal left for the rest of the day.", remaining)
		}
	}
	for _, r := range ratings {
		if r.Rating != RatingSafe {
			fmt.Fprintf(&sb, " For %s: %s (%s).", r.Condition, r.Rating, r.Metric)
		}
	}

	tip := "Drink plain water instead of sweetened drinks with this meal."
	if meal.Totals.Sodium > 1000 {
		tip = "Ask for less gravy or sauce next time to cut the sodium."
	} else if meal.Totals.Sugar > 25 {
		tip = "Choose kurang manis or skip the sweet drink to reduce sugar."
	}
	return sb.String(), tip
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
