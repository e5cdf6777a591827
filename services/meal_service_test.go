package services

import (
	"os"
	"testing"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMealDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Meal{}, &models.MealItem{}))

	db.Exec("DELETE FROM meal_items")
	db.Exec("DELETE FROM meals")
	return db
}

func seedMeal(t *testing.T, db *gorm.DB, userID uint) *models.Meal {
	t.Helper()
	meal := &models.Meal{UserID: userID, Name: "nasi lemak", AteAt: time.Now()}
	require.NoError(t, db.Create(meal).Error)
	require.NoError(t, db.Create(&models.MealItem{
		MealID: meal.ID, Name: "coconut rice", Scalable: true, Calories: 400, Carbs: 68,
	}).Error)
	return meal
}

func TestDeleteMealRejectsForeignMeal(t *testing.T) {
	db := setupMealDB(t)
	svc := NewMealService(db)

	victim := seedMeal(t, db, 1)

	err := svc.DeleteMeal(2, victim.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var items []models.MealItem
	require.NoError(t, db.Where("meal_id = ?", victim.ID).Find(&items).Error)
	assert.Len(t, items, 1, "another user's delete must not touch the items")

	var meal models.Meal
	assert.NoError(t, db.First(&meal, victim.ID).Error)
}

func TestDeleteMealRemovesMealAndItems(t *testing.T) {
	db := setupMealDB(t)
	svc := NewMealService(db)

	meal := seedMeal(t, db, 1)
	require.NoError(t, svc.DeleteMeal(1, meal.ID))

	var items []models.MealItem
	require.NoError(t, db.Where("meal_id = ?", meal.ID).Find(&items).Error)
	assert.Empty(t, items)

	err := db.First(&models.Meal{}, meal.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMealLeavesLedgerOfOthersIntact(t *testing.T) {
	db := setupMealDB(t)
	svc := NewMealService(db)

	victim := seedMeal(t, db, 1)
	mine := seedMeal(t, db, 2)

	require.NoError(t, svc.DeleteMeal(2, mine.ID))

	var meals []models.Meal
	require.NoError(t, db.Preload("Items").Where("user_id = ?", uint(1)).Find(&meals).Error)
	require.Len(t, meals, 1)
	assert.InDelta(t, 400, SumMeals(meals).Calories, 0.001, "user 1's daily sums are unaffected")
	assert.Equal(t, victim.ID, meals[0].ID)
}
