package services

import (
	"fmt"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"

	"gorm.io/gorm"
)

// MealService owns the persistence write path: once the caller confirms an
// analysis (including the explicit halal decision when one was required), the
// composed result becomes Meal + MealItem rows. Inserts are append-only; the
// ledger read is eventually consistent with the latest committed insert.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// SaveAnalyzedMeal persists a confirmed analysis. Item vectors are stored
// post-scaling so that summing items always reproduces the meal totals.
func (s *MealService) SaveAnalyzedMeal(userID uint, r *models.AnalysisResult, ateAt time.Time, halalConfirmed bool) (*models.Meal, error) {
	if r == nil {
		return nil, fmt.Errorf("nothing to save")
	}
	if r.RequiresHalalConfirmation && !halalConfirmed {
		return nil, ErrHalalUnconfirmed
	}
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	meal := &models.Meal{
		UserID:         userID,
		AnalysisID:     r.ID,
		Name:           r.Food.Name,
		Category:       r.Food.Category,
		SourceTier:     string(r.Food.Tier),
		Confidence:     r.Food.Confidence,
		Verified:       r.Food.Verified,
		HalalStatus:    string(r.Halal.Status),
		HalalReason:    r.Halal.Reason,
		HalalConfirmed: halalConfirmed,
		Multiplier:     r.Meal.Multiplier,
		PhotoURL:       r.PhotoURL,
		AteAt:          ateAt,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	for _, comp := range r.Meal.Included {
		vec := comp.Nutrients
		if comp.Scalable {
			vec = vec.Scale(r.Meal.Multiplier)
		}
		if err := s.db.Create(itemRow(meal.ID, comp.Name, comp.Scalable, false, vec)).Error; err != nil {
			return nil, err
		}
	}
	for _, add := range r.Meal.AddOns {
		vec := add.Nutrients
		if add.Scalable {
			vec = vec.Scale(r.Meal.Multiplier)
		}
		if err := s.db.Create(itemRow(meal.ID, add.Name, add.Scalable, true, vec)).Error; err != nil {
			return nil, err
		}
	}

	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func itemRow(mealID uint, name string, scalable, addOn bool, n models.Nutrients) *models.MealItem {
	return &models.MealItem{
		MealID:      mealID,
		Name:        name,
		Scalable:    scalable,
		AddOn:       addOn,
		Calories:    n.Calories,
		Protein:     n.Protein,
		Carbs:       n.Carbs,
		Fat:         n.Fat,
		SatFat:      n.SatFat,
		Sodium:      n.Sodium,
		Sugar:       n.Sugar,
		Cholesterol: n.Cholesterol,
		Phosphorus:  n.Phosphorus,
		Potassium:   n.Potassium,
		Fiber:       n.Fiber,
	}
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal and its items. Ownership is checked before any
// row is touched so a foreign meal ID can never destroy another user's items.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// ListFlaggedMeals returns meals the user logged over a non_halal flag, for
// the history screen's filter.
func (s *MealService) ListFlaggedMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND halal_status = ?", userID, string(models.HalalBlocked)).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}
