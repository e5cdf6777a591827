package services

import (
	"context"
	"errors"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/utils"

	"gorm.io/gorm"
)

// LedgerService reads the per-user, per-day running nutrient sum. Every
// request re-derives it from the store with no pipeline-side caching, so a
// snapshot can never be stale across requests.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Snapshot sums all meals the user persisted for the given date, before the
// current meal. Anonymous requests (userID 0) get a zeroed snapshot so the
// rest of the pipeline never special-cases a missing user.
func (s *LedgerService) Snapshot(ctx context.Context, userID uint, date time.Time) (models.DailyLedgerSnapshot, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	snap := models.DailyLedgerSnapshot{Date: start, UserID: userID}
	if userID == 0 {
		return snap, nil
	}
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Find(&meals).Error
	if err != nil {
		return snap, stageErr("ledger", "postgres", err)
	}

	snap.Totals = SumMeals(meals)
	snap.MealCount = len(meals)
	return snap, nil
}

// SumMeals folds all item vectors of the given meals into one total.
func SumMeals(meals []models.Meal) models.Nutrients {
	var total models.Nutrients
	for _, m := range meals {
		for _, it := range m.Items {
			total = total.Add(it.Vector())
		}
	}
	return total
}

// Targets returns the user's daily goal row, deriving recommended targets from
// the profile when none has been set yet.
func (s *LedgerService) Targets(ctx context.Context, userID uint) (models.DailyGoal, error) {
	var goal models.DailyGoal
	if userID == 0 {
		return goal, nil
	}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return goal, stageErr("ledger", "postgres", err)
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return goal, nil // no profile either; leave targets zeroed
	}
	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}
	goal.UserID = userID
	goal.Calories = utils.RecommendedCalories(user.Sex, age, user.Height, user.Weight)
	goal.Protein, goal.Carbs, goal.Fat, goal.SatFat, goal.Sodium, goal.Sugar = utils.DefaultTargets(goal.Calories)
	return goal, nil
}

// UpsertGoals creates or updates a user's daily targets.
func (s *LedgerService) UpsertGoals(userID uint, in models.DailyGoal) error {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		in.UserID = userID
		return s.db.Create(&in).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.SatFat = in.SatFat
	goal.Sodium = in.Sodium
	goal.Sugar = in.Sugar
	return s.db.Save(&goal).Error
}
