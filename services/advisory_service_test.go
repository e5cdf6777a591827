package services

import (
	"context"
	"testing"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestRateConditionsThresholds(t *testing.T) {
	cases := []struct {
		name      string
		condition string
		totals    models.Nutrients
		want      string
	}{
		{"diabetes safe", "diabetes", models.Nutrients{Carbs: 30, Sugar: 5}, RatingSafe},
		{"diabetes caution on carbs", "diabetes", models.Nutrients{Carbs: 50}, RatingCaution},
		{"diabetes limit on sugar", "diabetes", models.Nutrients{Sugar: 30}, RatingLimit},
		{"hypertension safe", "hypertension", models.Nutrients{Sodium: 400}, RatingSafe},
		{"hypertension caution", "hypertension", models.Nutrients{Sodium: 700}, RatingCaution},
		{"hypertension limit", "hypertension", models.Nutrients{Sodium: 1200}, RatingLimit},
		{"dyslipidemia caution on satfat", "dyslipidemia", models.Nutrients{SatFat: 7}, RatingCaution},
		{"dyslipidemia limit on cholesterol", "dyslipidemia", models.Nutrients{Cholesterol: 250}, RatingLimit},
		{"ckd caution on protein", "ckd", models.Nutrients{Protein: 30}, RatingCaution},
		{"ckd limit on potassium", "ckd", models.Nutrients{Potassium: 900}, RatingLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := RateConditions([]string{tc.condition}, tc.totals, nil)
			assert.Len(t, out, 1)
			assert.Equal(t, tc.want, out[0].Rating)
			assert.NotEmpty(t, out[0].Explanation)
		})
	}
}

func TestRateConditionsAliasesAndDedup(t *testing.T) {
	out := RateConditions(
		[]string{"Kencing Manis", "diabetic", "darah tinggi"},
		models.Nutrients{Carbs: 80, Sodium: 700},
		nil,
	)
	assert.Len(t, out, 2, "aliases of the same family collapse to one rating")
	assert.Equal(t, "diabetes", out[0].Condition)
	assert.Equal(t, RatingLimit, out[0].Rating)
	assert.Equal(t, "hypertension", out[1].Condition)
}

func TestRateConditionsBaselineTightensOnly(t *testing.T) {
	totals := models.Nutrients{Carbs: 30}

	tightened := RateConditions([]string{"diabetes"}, totals, map[string]string{"diabetes": RatingLimit})
	assert.Equal(t, RatingLimit, tightened[0].Rating, "curated baseline tightens a computed safe")

	notRelaxed := RateConditions([]string{"diabetes"}, models.Nutrients{Sugar: 30}, map[string]string{"diabetes": RatingSafe})
	assert.Equal(t, RatingLimit, notRelaxed[0].Rating, "a softer baseline never relaxes a computed limit")
}

func TestRateConditionsUnknownConditionIgnored(t *testing.T) {
	out := RateConditions([]string{"asthma"}, models.Nutrients{Carbs: 200}, nil)
	assert.Empty(t, out)
}

func TestClassifyGlucoseImpactKeywordOutranksMacros(t *testing.T) {
	// Teh tarik's macros alone would classify lower; the name match wins.
	impact := ClassifyGlucoseImpact("teh tarik kurang manis", models.Nutrients{Carbs: 20, Sugar: 18})
	assert.Equal(t, "very_high", impact.Level)

	impact = ClassifyGlucoseImpact("char kway teow", models.Nutrients{Carbs: 20})
	assert.Equal(t, "high", impact.Level)
}

func TestClassifyGlucoseImpactMacroFallback(t *testing.T) {
	cases := []struct {
		totals models.Nutrients
		want   string
	}{
		{models.Nutrients{Carbs: 100}, "very_high"},
		{models.Nutrients{Sugar: 30}, "high"},
		{models.Nutrients{Carbs: 40}, "moderate"},
		{models.Nutrients{Carbs: 10}, "low"},
	}
	for _, tc := range cases {
		impact := ClassifyGlucoseImpact("grilled fish", tc.totals)
		assert.Equal(t, tc.want, impact.Level)
		assert.NotEmpty(t, impact.PeakWindow)
	}
}

func TestGenerateParsesNarrative(t *testing.T) {
	inf := &fakeInference{generated: "```json\n{\"main_advice\": \"Balance this with a lighter dinner.\", \"tip\": \"Skip the sweet drink.\"}\n```"}
	svc := NewAdvisoryService(inf)

	out := svc.Generate(context.Background(),
		models.ResolvedFood{Name: "nasi lemak"},
		models.PortionAdjustedMeal{Totals: models.Nutrients{Calories: 644, Carbs: 80}},
		models.DailyLedgerSnapshot{},
		models.DailyGoal{Calories: 2000},
		[]string{"diabetes"},
	)

	assert.False(t, out.Fallback)
	assert.Equal(t, "Balance this with a lighter dinner.", out.MainAdvice)
	assert.Equal(t, "Skip the sweet drink.", out.Tip)
	assert.Len(t, out.Ratings, 1)
	assert.Equal(t, "high", out.Glucose.Level)
}

func TestGenerateFallsBackOnInferenceFailure(t *testing.T) {
	inf := &fakeInference{generateErr: ErrInferenceUnavailable}
	svc := NewAdvisoryService(inf)

	out := svc.Generate(context.Background(),
		models.ResolvedFood{Name: "nasi lemak"},
		models.PortionAdjustedMeal{Totals: models.Nutrients{Calories: 644, Carbs: 80, Sodium: 890}},
		models.DailyLedgerSnapshot{Totals: models.Nutrients{Calories: 1200}},
		models.DailyGoal{Calories: 2000},
		[]string{"diabetes"},
	)

	assert.True(t, out.Fallback)
	assert.NotEmpty(t, out.MainAdvice, "the templated advisory always produces text")
	assert.NotEmpty(t, out.Tip)
	assert.Contains(t, out.MainAdvice, "644")
	assert.Len(t, out.Ratings, 1, "deterministic ratings survive the narrative failure")
}

func TestGenerateFallsBackOnUnparsableOutput(t *testing.T) {
	inf := &fakeInference{generated: "Sure! Here is some advice about your meal."}
	svc := NewAdvisoryService(inf)

	out := svc.Generate(context.Background(),
		models.ResolvedFood{Name: "chicken rice"},
		models.PortionAdjustedMeal{Totals: models.Nutrients{Calories: 600}},
		models.DailyLedgerSnapshot{}, models.DailyGoal{}, nil,
	)

	assert.True(t, out.Fallback)
	assert.NotEmpty(t, out.MainAdvice)
}
