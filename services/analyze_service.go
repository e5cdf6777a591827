package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AnalyzeOptions are the caller-side knobs: a manual portion multiplier
// (0 = use the visual estimate), components to leave out, and side items to add.
type AnalyzeOptions struct {
	Multiplier float64                `json:"multiplier"`
	Excluded   []string               `json:"excluded"`
	AddOns     []models.MealComponent `json:"add_ons"`
}

// AnalyzeService runs the full meal pipeline for one request: resolution and
// the ledger read run in parallel, then safety overrides, portion adjustment
// and the advisory pass run on the combined result.
type AnalyzeService struct {
	resolver *ResolverService
	ledger   *LedgerService
	advisory *AdvisoryService
	now      func() time.Time
}

func NewAnalyzeService(resolver *ResolverService, ledger *LedgerService, advisory *AdvisoryService) *AnalyzeService {
	return &AnalyzeService{
		resolver: resolver,
		ledger:   ledger,
		advisory: advisory,
		now:      time.Now,
	}
}

func (s *AnalyzeService) Analyze(ctx context.Context, input models.MealInput, opts AnalyzeOptions) (*models.AnalysisResult, error) {
	if err := normalizeInput(&input); err != nil {
		return nil, err
	}

	// The ledger read is independent of resolution, so the two run in
	// parallel; everything after needs both.
	var (
		food *models.ResolvedFood
		snap models.DailyLedgerSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		food, err = s.resolver.Resolve(gctx, input)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = s.ledger.Snapshot(gctx, input.UserID, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Safety overrides always run, whichever tier won.
	halal := utils.AssessHalal(utils.HalalSignal{
		Name:            food.Name,
		Category:        food.Category,
		DetectedProtein: food.DetectedProtein,
		Confidence:      food.Confidence,
	})

	multiplier := opts.Multiplier
	if multiplier <= 0 {
		multiplier = food.Portion.Multiplier
	}
	meal := AdjustPortion(*food, multiplier, opts.Excluded, opts.AddOns)

	conditions := input.Conditions
	if len(conditions) == 0 && input.UserID != 0 {
		conditions = s.userConditions(ctx, input.UserID)
	}
	targets, err := s.ledger.Targets(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	advisory := s.advisory.Generate(ctx, *food, meal, snap, targets, conditions)

	// The advisory text is one more surface the keyword rule must scan;
	// it can escalate the verdict but never soften it.
	halal = utils.ReassessWithText(halal, advisory.MainAdvice+" "+advisory.Tip)

	result := &models.AnalysisResult{
		ID:                        uuid.NewString(),
		Food:                      *food,
		Halal:                     halal,
		Meal:                      meal,
		Ledger:                    snap,
		Advisory:                  advisory,
		RequiresHalalConfirmation: halal.Status == models.HalalBlocked,
	}

	s.emitAlerts(input.UserID, result)
	return result, nil
}

func normalizeInput(input *models.MealInput) error {
	switch input.Kind {
	case models.InputText:
		input.Payload = strings.TrimSpace(input.Payload)
		if input.Payload == "" {
			return fmt.Errorf("%w: empty text payload", ErrInvalidInput)
		}
	case models.InputImage:
		if strings.TrimSpace(input.Payload) == "" {
			return fmt.Errorf("%w: empty image payload", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: kind must be image or text", ErrInvalidInput)
	}
	return nil
}

func (s *AnalyzeService) userConditions(ctx context.Context, userID uint) []string {
	var user models.User
	if err := s.ledger.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil
	}
	return user.ActiveConditions()
}

// emitAlerts surfaces the findings a user would want pushed immediately: a
// forced non-halal verdict, or any "limit" condition rating.
func (s *AnalyzeService) emitAlerts(userID uint, r *models.AnalysisResult) {
	if userID == 0 {
		return
	}
	if r.Halal.Status == models.HalalBlocked {
		EmitAlert(userID, "halal", fmt.Sprintf("%s was flagged: %s", r.Food.Name, r.Halal.Reason))
	}
	for _, cr := range r.Advisory.Ratings {
		if cr.Rating == RatingLimit {
			EmitAlert(userID, "condition", fmt.Sprintf("%s is rated LIMIT for %s (%s)", r.Food.Name, cr.Condition, cr.Metric))
		}
	}
}
