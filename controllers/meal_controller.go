package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

type SaveMealRequest struct {
	Result         *models.AnalysisResult `json:"result" binding:"required"`
	AteAt          time.Time              `json:"ate_at"`
	HalalConfirmed bool                   `json:"halal_confirmed"`
}

// POST /meals
func (mc *MealController) SaveMeal(c *gin.Context) {
	var req SaveMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AteAt.IsZero() {
		req.AteAt = time.Now()
	}

	meal, err := mc.Meals.SaveAnalyzedMeal(c.GetUint("userID"), req.Result, req.AteAt, req.HalalConfirmed)
	if err != nil {
		if errors.Is(err, services.ErrHalalUnconfirmed) {
			c.JSON(http.StatusConflict, gin.H{
				"error":                       err.Error(),
				"requires_halal_confirmation": true,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?from=RFC3339&to=RFC3339
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err1 := time.Parse(time.RFC3339, fromStr)
		to, err2 := time.Parse(time.RFC3339, toStr)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be RFC3339 timestamps"})
			return
		}
		meals, err := mc.Meals.ListMealsByDateRange(userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": meals})
		return
	}

	meals, err := mc.Meals.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GET /meals/recent?limit=N
func (mc *MealController) RecentMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	meals, err := mc.Meals.ListRecentMeals(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GET /meals/flagged
func (mc *MealController) FlaggedMeals(c *gin.Context) {
	meals, err := mc.Meals.ListFlaggedMeals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GET /meals/:id
func (mc *MealController) GetMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	meal, err := mc.Meals.GetMeal(c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	if err := mc.Meals.DeleteMeal(c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
