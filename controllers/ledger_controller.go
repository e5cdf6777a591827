package controllers

import (
	"net/http"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/services"

	"github.com/gin-gonic/gin"
)

type LedgerController struct {
	Ledger *services.LedgerService
}

func NewLedgerController(ledger *services.LedgerService) *LedgerController {
	return &LedgerController{Ledger: ledger}
}

// GET /ledger/today?date=2006-01-02
func (lc *LedgerController) Today(c *gin.Context) {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	userID := c.GetUint("userID")
	snap, err := lc.Ledger.Snapshot(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	targets, err := lc.Ledger.Targets(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledger": snap, "targets": targets})
}

// GET /ledger/targets
func (lc *LedgerController) GetTargets(c *gin.Context) {
	targets, err := lc.Ledger.Targets(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, targets)
}

type GoalsRequest struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	SatFat   float64 `json:"sat_fat"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

// PUT /ledger/targets
func (lc *LedgerController) UpdateTargets(c *gin.Context) {
	var req GoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal := models.DailyGoal{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		SatFat:   req.SatFat,
		Sodium:   req.Sodium,
		Sugar:    req.Sugar,
	}
	if err := lc.Ledger.UpsertGoals(c.GetUint("userID"), goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "targets updated"})
}
