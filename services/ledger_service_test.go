package services

import (
	"context"
	"testing"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMeals(t *testing.T) {
	meals := []models.Meal{
		{Items: []models.MealItem{
			{Calories: 400, Carbs: 50, Sodium: 600},
			{Calories: 150, Sugar: 20},
		}},
		{Items: []models.MealItem{
			{Calories: 250, Protein: 15, Sodium: 300},
		}},
	}

	total := SumMeals(meals)
	assert.InDelta(t, 800, total.Calories, 0.001)
	assert.InDelta(t, 50, total.Carbs, 0.001)
	assert.InDelta(t, 900, total.Sodium, 0.001)
	assert.InDelta(t, 20, total.Sugar, 0.001)
	assert.InDelta(t, 15, total.Protein, 0.001)
}

func TestSumMealsEmpty(t *testing.T) {
	assert.True(t, SumMeals(nil).IsZero())
	assert.True(t, SumMeals([]models.Meal{{}}).IsZero())
}

func TestSnapshotAnonymousUserIsZeroed(t *testing.T) {
	// userID 0 never touches the store, so a nil DB is fine here.
	svc := NewLedgerService(nil)

	date := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	snap, err := svc.Snapshot(context.Background(), 0, date)
	require.NoError(t, err)

	assert.True(t, snap.Totals.IsZero())
	assert.Zero(t, snap.MealCount)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), snap.Date, "snapshot date is truncated to midnight")
}

func TestTargetsAnonymousUserIsZeroed(t *testing.T) {
	svc := NewLedgerService(nil)
	goal, err := svc.Targets(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, goal.Calories)
}
