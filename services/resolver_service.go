package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// Trust-tier thresholds. Curated data is hand-audited and wins outright; the
// generic catalog must clear a similarity bar to beat inference. The
// cross-reference bar is lower because the inference-identified name has
// already passed a plausibility check. Carried over as-observed; revisit
// empirically before tuning.
const (
	curatedConfidence        = 0.95
	genericTextThreshold     = 0.8
	genericCrossRefThreshold = 0.7
)

// minimalDefaultNutrients is the degraded vector used when nothing usable came
// back from any source: a generic mixed plate, flagged unverified.
var minimalDefaultNutrients = models.Nutrients{
	Calories: 350, Protein: 12, Carbs: 45, Fat: 13, SatFat: 4,
	Sodium: 600, Sugar: 5, Phosphorus: 150, Potassium: 250, Fiber: 2,
}

// ResolverService reconciles the three sources of truth into one ResolvedFood.
// Strategies are tried in trust order and a single arbitration step applies
// the tie-break table, so the ordering is testable in isolation.
type ResolverService struct {
	curated   *CuratedCatalog
	generic   GenericCatalog
	inference InferenceClient
}

func NewResolverService(curated *CuratedCatalog, generic GenericCatalog, inference InferenceClient) *ResolverService {
	return &ResolverService{curated: curated, generic: generic, inference: inference}
}

// Resolve arbitrates one meal input into a ResolvedFood. Identification-path
// failures are fatal; catalog misses degrade down the tier ladder.
func (s *ResolverService) Resolve(ctx context.Context, input models.MealInput) (*models.ResolvedFood, error) {
	switch input.Kind {
	case models.InputText:
		return s.resolveText(ctx, input.Payload)
	case models.InputImage:
		return s.resolveImage(ctx, input)
	default:
		return nil, fmt.Errorf("%w: unsupported input kind %q", ErrInvalidInput, input.Kind)
	}
}

func (s *ResolverService) resolveText(ctx context.Context, text string) (*models.ResolvedFood, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	// Pre-check: is this food at all? A failed or negative validation
	// short-circuits; we never guess nutrition for unvalidated text.
	tv, err := s.inference.ValidateText(ctx, text)
	if err != nil {
		return nil, stageErr("validate", "gemini", err)
	}
	if !tv.IsFood {
		return nil, stageErr("validate", "gemini",
			fmt.Errorf("%w: %s", ErrNotFood, tv.Suggestion))
	}

	// Tier 1: curated catalog, tried on the cleaned name then the raw text.
	if e := s.lookupCurated(tv.Name, text); e != nil {
		food := curatedFood(e, e.Name, e.Category)
		return &food, nil
	}

	// Tier 2 and 3 race: generic fuzzy lookup and inference estimate are
	// independent, so issue both and arbitrate afterwards.
	var (
		wg      sync.WaitGroup
		match   *GenericMatch
		inf     *models.InferenceResult
		infErr  error
		lookErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		match, lookErr = s.generic.Lookup(ctx, tv.Name)
	}()
	go func() {
		defer wg.Done()
		inf, infErr = s.inference.Identify(ctx, models.MealInput{Kind: models.InputText, Payload: text})
	}()
	wg.Wait()
	_ = lookErr // a generic-catalog failure is just a miss

	if match != nil && match.Confidence > genericTextThreshold {
		food := genericFood(match, match.Name, match.Category)
		mergeInference(&food, inf)
		return &food, nil
	}

	if inf != nil {
		// Cross-reference the inference-identified name against both
		// catalogs before trusting the estimate verbatim.
		if food, ok := s.crossReference(inf, match); ok {
			return food, nil
		}
		food := inferenceFood(inf)
		return &food, nil
	}

	if infErr != nil && match == nil {
		// Neither catalog matched and inference gave nothing usable:
		// degrade to a minimal default rather than failing a meal the
		// user has already committed to logging.
		food := degradedFood(tv.Name, tv.Category)
		return &food, nil
	}
	if match != nil {
		// Below-threshold generic match is still better than the default vector.
		food := genericFood(match, match.Name, match.Category)
		food.Verified = false
		return &food, nil
	}

	return nil, stageErr("identify", "gemini", fmt.Errorf("%w: %v", ErrNoResolution, infErr))
}

func (s *ResolverService) resolveImage(ctx context.Context, input models.MealInput) (*models.ResolvedFood, error) {
	// Identification is the one step we cannot do without: a timeout or
	// exhausted retries here fails the whole request.
	inf, err := s.inference.Identify(ctx, input)
	if err != nil {
		return nil, stageErr("identify", "gemini", err)
	}

	// For images the dish name and category stay inference-derived; a catalog
	// hit only replaces the nutrient vector and serving size.
	if e := s.lookupCurated(inf.Name); e != nil {
		food := curatedFood(e, inf.Name, inf.Category)
		mergeInference(&food, inf)
		return &food, nil
	}

	match, lookErr := s.generic.Lookup(ctx, inf.Name)
	_ = lookErr
	if match != nil && match.Confidence > genericCrossRefThreshold {
		food := genericFood(match, inf.Name, inf.Category)
		mergeInference(&food, inf)
		return &food, nil
	}

	food := inferenceFood(inf)
	return &food, nil
}

// crossReference retries both catalogs on the AI-identified name (text flow).
func (s *ResolverService) crossReference(inf *models.InferenceResult, earlier *GenericMatch) (*models.ResolvedFood, bool) {
	if e := s.lookupCurated(inf.Name); e != nil {
		food := curatedFood(e, e.Name, e.Category)
		mergeInference(&food, inf)
		return &food, true
	}
	if earlier != nil && TokenSimilarity(inf.Name, earlier.Name) > genericCrossRefThreshold {
		food := genericFood(earlier, earlier.Name, earlier.Category)
		mergeInference(&food, inf)
		return &food, true
	}
	return nil, false
}

func (s *ResolverService) lookupCurated(queries ...string) *models.DishEntry {
	for _, q := range queries {
		if e := s.curated.Lookup(q); e != nil {
			return e
		}
	}
	return nil
}

func curatedFood(e *models.DishEntry, name, category string) models.ResolvedFood {
	return models.ResolvedFood{
		Name:        name,
		Category:    category,
		Nutrients:   e.Nutrients,
		ServingSize: e.Serving,
		Tier:        models.TierCurated,
		Confidence:  curatedConfidence,
		Verified:    true,
		Components:  e.Components,
		Portion:     models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},

		BaselineRatings: e.Ratings,
	}
}

func genericFood(m *GenericMatch, name, category string) models.ResolvedFood {
	return models.ResolvedFood{
		Name:        name,
		Category:    category,
		Nutrients:   m.Nutrients,
		ServingSize: m.Serving,
		Tier:        models.TierGeneric,
		Confidence:  m.Confidence,
		Verified:    true,
		Portion:     models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},
	}
}

func inferenceFood(inf *models.InferenceResult) models.ResolvedFood {
	n := inf.Nutrients
	if n.IsZero() {
		n = minimalDefaultNutrients
	}
	return models.ResolvedFood{
		Name:            inf.Name,
		Category:        inf.Category,
		Nutrients:       n,
		ServingSize:     "1 serving (estimated)",
		Tier:            models.TierInference,
		Confidence:      inf.Confidence,
		Verified:        false,
		Components:      inf.Components,
		DetectedProtein: inf.DetectedProtein,
		Portion:         inf.Portion,
	}
}

func degradedFood(name, category string) models.ResolvedFood {
	return models.ResolvedFood{
		Name:        name,
		Category:    category,
		Nutrients:   minimalDefaultNutrients,
		ServingSize: "1 serving (assumed)",
		Tier:        models.TierInference,
		Confidence:  0,
		Verified:    false,
		Portion:     models.PortionEstimate{SizeCategory: "regular", Multiplier: 1.0},
	}
}

// mergeInference folds inference-only fields into a catalog winner: detected
// protein, the visual portion estimate, and the component breakdown when the
// catalog entry has none.
func mergeInference(food *models.ResolvedFood, inf *models.InferenceResult) {
	if inf == nil {
		return
	}
	if food.DetectedProtein == "" {
		food.DetectedProtein = inf.DetectedProtein
	}
	if inf.Portion.Multiplier > 0 {
		food.Portion = inf.Portion
	}
	if len(food.Components) == 0 && len(inf.Components) > 0 {
		food.Components = inf.Components
	}
}
