package controllers

import (
	"errors"
	"net/http"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/services"
	"github.com/rnp2860/boleh-makan-vo-sub000/utils"

	"github.com/gin-gonic/gin"
)

type AnalyzeController struct {
	Pipeline *services.AnalyzeService
}

func NewAnalyzeController(pipeline *services.AnalyzeService) *AnalyzeController {
	return &AnalyzeController{Pipeline: pipeline}
}

type AnalyzeRequest struct {
	Kind        string                 `json:"kind" binding:"required,oneof=image text"`
	Text        string                 `json:"text"`
	ImageBase64 string                 `json:"image_base64"`
	Conditions  []string               `json:"conditions"`
	Multiplier  float64                `json:"multiplier"`
	Excluded    []string               `json:"excluded"`
	AddOns      []models.MealComponent `json:"add_ons"`
	StorePhoto  bool                   `json:"store_photo"`
}

// POST /food/analyze
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := models.MealInput{
		Kind:       models.MealInputKind(req.Kind),
		UserID:     c.GetUint("userID"),
		Conditions: req.Conditions,
	}
	switch input.Kind {
	case models.InputText:
		input.Payload = req.Text
	case models.InputImage:
		input.Payload = req.ImageBase64
	}

	result, err := ac.Pipeline.Analyze(c.Request.Context(), input, services.AnalyzeOptions{
		Multiplier: req.Multiplier,
		Excluded:   req.Excluded,
		AddOns:     req.AddOns,
	})
	if err != nil {
		status, body := analyzeErrorResponse(err)
		c.JSON(status, body)
		return
	}

	// Keeping the photo is best-effort; a failed upload never fails the analysis.
	if req.StorePhoto && input.Kind == models.InputImage {
		if url, uerr := utils.UploadMealPhoto(req.ImageBase64, input.UserID); uerr == nil {
			result.PhotoURL = url
		}
	}

	c.JSON(http.StatusOK, result)
}

func analyzeErrorResponse(err error) (int, gin.H) {
	var stage *services.StageError
	body := gin.H{"error": err.Error()}
	if errors.As(err, &stage) {
		body["stage"] = stage.Stage
		if stage.Dep != "" {
			body["dependency"] = stage.Dep
		}
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, body
	case errors.Is(err, services.ErrNotFood):
		body["suggestion"] = "Try typing a dish or drink name, e.g. \"nasi lemak\" or \"teh tarik\"."
		return http.StatusUnprocessableEntity, body
	case errors.Is(err, services.ErrInferenceUnavailable),
		errors.Is(err, services.ErrInferenceMalformed):
		body["retryable"] = true
		return http.StatusBadGateway, body
	default:
		return http.StatusInternalServerError, body
	}
}
