package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDishes = []models.DishEntry{
	{
		Name:      "nasi lemak",
		Keywords:  []string{"coconut rice"},
		Category:  "malay",
		Nutrients: models.Nutrients{Calories: 644, Protein: 18, Carbs: 80, Fat: 28, Sodium: 890, Sugar: 7},
		Serving:   "1 plate",
		Ratings:   map[string]string{"diabetes": RatingCaution},
	},
	{
		Name:      "teh tarik",
		Category:  "beverage",
		Nutrients: models.Nutrients{Calories: 180, Carbs: 28, Sugar: 24},
		Serving:   "1 cup",
	},
}

func newTestResolver(inf *fakeInference, gen *fakeGeneric) *ResolverService {
	return NewResolverService(newCuratedCatalog(testDishes), gen, inf)
}

func TestResolveTextCuratedWins(t *testing.T) {
	inf := &fakeInference{validation: &TextValidation{IsFood: true, Name: "nasi lemak", Category: "malay"}}
	r := newTestResolver(inf, &fakeGeneric{})

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "nasi lemak with extra sambal"})
	require.NoError(t, err)

	assert.Equal(t, models.TierCurated, food.Tier)
	assert.Equal(t, "nasi lemak", food.Name)
	assert.Equal(t, curatedConfidence, food.Confidence)
	assert.True(t, food.Verified)
	assert.Equal(t, RatingCaution, food.BaselineRatings["diabetes"])
	assert.Zero(t, inf.identifyCalls, "a curated hit short-circuits before identify")
}

func TestResolveTextGenericAboveThreshold(t *testing.T) {
	inf := &fakeInference{
		validation: &TextValidation{IsFood: true, Name: "grilled chicken chop", Category: "western"},
		identify: &models.InferenceResult{
			Name: "chicken chop", Confidence: 0.7,
			DetectedProtein: "chicken",
			Nutrients:       models.Nutrients{Calories: 520},
			Portion:         models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},
		},
	}
	gen := &fakeGeneric{match: &GenericMatch{
		Name: "Chicken Chop, Grilled", Category: "Generic meals",
		Nutrients:  models.Nutrients{Calories: 480, Protein: 42},
		Serving:    "100 g",
		Confidence: 0.85,
	}}
	r := newTestResolver(inf, gen)

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "grilled chicken chop"})
	require.NoError(t, err)

	assert.Equal(t, models.TierGeneric, food.Tier)
	assert.Equal(t, "Chicken Chop, Grilled", food.Name)
	assert.True(t, food.Verified)
	assert.InDelta(t, 480, food.Nutrients.Calories, 0.001)
	assert.Equal(t, "chicken", food.DetectedProtein, "inference-only fields merge into the catalog winner")
}

func TestResolveTextInferenceVerbatimIsUnverified(t *testing.T) {
	inf := &fakeInference{
		validation: &TextValidation{IsFood: true, Name: "grandma's secret stew"},
		identify: &models.InferenceResult{
			Name: "beef stew", Category: "western", Confidence: 0.6,
			Nutrients: models.Nutrients{Calories: 400, Protein: 30},
			Portion:   models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},
		},
	}
	r := newTestResolver(inf, &fakeGeneric{})

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "grandma's secret stew"})
	require.NoError(t, err)

	assert.Equal(t, models.TierInference, food.Tier)
	assert.False(t, food.Verified)
	assert.InDelta(t, 400, food.Nutrients.Calories, 0.001)
}

func TestResolveTextCrossReferenceOnInferredName(t *testing.T) {
	// The raw text misses every catalog, but the inference-identified name is a
	// curated dish: the curated vector wins, keyed by the identified name.
	inf := &fakeInference{
		validation: &TextValidation{IsFood: true, Name: "pulled milk tea"},
		identify: &models.InferenceResult{
			Name: "teh tarik", Category: "beverage", Confidence: 0.8,
			Portion: models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},
		},
	}
	r := newTestResolver(inf, &fakeGeneric{})

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "that pulled milk tea drink"})
	require.NoError(t, err)

	assert.Equal(t, models.TierCurated, food.Tier)
	assert.Equal(t, "teh tarik", food.Name)
	assert.InDelta(t, 180, food.Nutrients.Calories, 0.001)
}

func TestResolveTextNotFood(t *testing.T) {
	inf := &fakeInference{validation: &TextValidation{IsFood: false, Suggestion: "try a dish name"}}
	r := newTestResolver(inf, &fakeGeneric{})

	_, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "my homework"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFood)
	assert.Zero(t, inf.identifyCalls, "a not-food verdict short-circuits the whole flow")
}

func TestResolveTextDegradedDefault(t *testing.T) {
	inf := &fakeInference{
		validation:  &TextValidation{IsFood: true, Name: "mystery platter", Category: "unknown"},
		identifyErr: ErrInferenceUnavailable,
	}
	r := newTestResolver(inf, &fakeGeneric{err: errors.New("edamam down")})

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "mystery platter"})
	require.NoError(t, err, "total source failure degrades, it does not fail the meal")

	assert.Equal(t, models.TierInference, food.Tier)
	assert.False(t, food.Verified)
	assert.Zero(t, food.Confidence)
	assert.Equal(t, minimalDefaultNutrients, food.Nutrients)
}

func TestResolveTextBelowThresholdGenericStillBeatsDefault(t *testing.T) {
	inf := &fakeInference{
		validation:  &TextValidation{IsFood: true, Name: "village fried noodles"},
		identifyErr: ErrInferenceUnavailable,
	}
	gen := &fakeGeneric{match: &GenericMatch{
		Name: "Fried Noodles", Nutrients: models.Nutrients{Calories: 530}, Confidence: 0.6,
	}}
	r := newTestResolver(inf, gen)

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "village fried noodles"})
	require.NoError(t, err)

	assert.Equal(t, models.TierGeneric, food.Tier)
	assert.False(t, food.Verified, "a below-threshold match is used but flagged unverified")
	assert.InDelta(t, 530, food.Nutrients.Calories, 0.001)
}

func TestResolveTextEmptyInput(t *testing.T) {
	r := newTestResolver(&fakeInference{}, &fakeGeneric{})
	_, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveImageIdentifyFailureIsFatal(t *testing.T) {
	inf := &fakeInference{identifyErr: ErrInferenceUnavailable}
	r := newTestResolver(inf, &fakeGeneric{})

	_, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputImage, Payload: "data:image/jpeg;base64,xxxx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceUnavailable)

	var stage *StageError
	require.ErrorAs(t, err, &stage)
	assert.Equal(t, "identify", stage.Stage)
	assert.Equal(t, "gemini", stage.Dep)
}

func TestResolveImageKeepsInferredNameOnCatalogHit(t *testing.T) {
	inf := &fakeInference{identify: &models.InferenceResult{
		Name: "nasi lemak with fried chicken", Category: "malay", Confidence: 0.88,
		DetectedProtein: "chicken",
		Portion:         models.PortionEstimate{SizeCategory: "large", Multiplier: 1.5},
	}}
	r := newTestResolver(inf, &fakeGeneric{})

	food, err := r.Resolve(context.Background(), models.MealInput{Kind: models.InputImage, Payload: "data:image/jpeg;base64,xxxx"})
	require.NoError(t, err)

	assert.Equal(t, models.TierCurated, food.Tier)
	assert.Equal(t, "nasi lemak with fried chicken", food.Name, "image flow keeps the inference-derived name")
	assert.InDelta(t, 644, food.Nutrients.Calories, 0.001, "but the curated nutrient vector")
	assert.Equal(t, 1.5, food.Portion.Multiplier, "and the visual portion estimate")
}

func TestResolveDeterministicForSameInput(t *testing.T) {
	mk := func() *ResolverService {
		return newTestResolver(
			&fakeInference{validation: &TextValidation{IsFood: true, Name: "nasi lemak"}},
			&fakeGeneric{},
		)
	}
	a, err := mk().Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "nasi lemak"})
	require.NoError(t, err)
	b, err := mk().Resolve(context.Background(), models.MealInput{Kind: models.InputText, Payload: "nasi lemak"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
