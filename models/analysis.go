package models

import "time"

// Ephemeral pipeline types. Everything here lives for one request only;
// only Meal/MealItem rows (meal.go) are persisted.

type MealInputKind string

const (
	InputImage MealInputKind = "image"
	InputText  MealInputKind = "text"
)

// MealInput is the raw request handed to the pipeline. For images the payload
// is a base64 data URI; for text it is the user's free-text description.
type MealInput struct {
	Kind       MealInputKind `json:"kind"`
	Payload    string        `json:"payload"`
	UserID     uint          `json:"user_id,omitempty"` // 0 = anonymous
	Conditions []string      `json:"conditions,omitempty"`
}

type SourceTier string

const (
	TierCurated   SourceTier = "curated"
	TierGeneric   SourceTier = "generic"
	TierInference SourceTier = "inference"
)

// MealComponent is one line item of a dish: a sub-component, or a user-added
// side item. Scalable items follow the portion multiplier; non-scalable ones
// (drinks, fixed-serving sides) do not.
type MealComponent struct {
	Name      string    `json:"name"`
	Nutrients Nutrients `json:"nutrients"`
	Scalable  bool      `json:"scalable"`
}

type PortionEstimate struct {
	SizeCategory string  `json:"size_category"` // small | regular | large
	Multiplier   float64 `json:"multiplier"`
	Reasoning    string  `json:"reasoning,omitempty"`
}

// InferenceResult is what the vision/text model returned for one identify call.
type InferenceResult struct {
	Name            string          `json:"candidate_name"`
	Category        string          `json:"category"`
	Confidence      float64         `json:"confidence"`
	Components      []MealComponent `json:"detected_components"`
	DetectedProtein string          `json:"detected_protein"`
	Nutrients       Nutrients       `json:"nutrients"`
	Portion         PortionEstimate `json:"portion_estimate"`
}

// ResolvedFood is the arbitration winner. Nutrients is always fully populated;
// Verified is false whenever the nutrient vector came from inference alone.
type ResolvedFood struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Nutrients       Nutrients       `json:"nutrients"`
	ServingSize     string          `json:"serving_size"`
	Tier            SourceTier      `json:"source_tier"`
	Confidence      float64         `json:"confidence"`
	Verified        bool            `json:"verified"`
	Components      []MealComponent `json:"components"`
	DetectedProtein string          `json:"detected_protein,omitempty"`
	Portion         PortionEstimate `json:"portion_estimate"`

	// BaselineRatings carries the curated entry's per-condition ratings when
	// the curated tier won; the advisory generator may tighten but not relax them.
	BaselineRatings map[string]string `json:"baseline_ratings,omitempty"`
}

type HalalStatus string

const (
	HalalOK      HalalStatus = "halal"
	HalalBlocked HalalStatus = "non_halal"
	HalalUnknown HalalStatus = "unknown"
)

type HalalTrigger string

const (
	TriggerNone         HalalTrigger = "none"
	TriggerKeyword      HalalTrigger = "keyword"
	TriggerGenericLabel HalalTrigger = "generic_label_trap"
	TriggerProtein      HalalTrigger = "detected_protein"
	TriggerUser         HalalTrigger = "user_override"
)

type HalalAssessment struct {
	Status      HalalStatus  `json:"status"`
	Reason      string       `json:"reason,omitempty"`
	TriggeredBy HalalTrigger `json:"triggered_by"`
}

// PortionAdjustedMeal owns the final per-meal totals, recomputed from
// (included scalable items × multiplier) + non-scalable items.
type PortionAdjustedMeal struct {
	Multiplier float64         `json:"multiplier"`
	Included   []MealComponent `json:"included"`
	Excluded   []string        `json:"excluded,omitempty"`
	AddOns     []MealComponent `json:"add_ons,omitempty"`
	Totals     Nutrients       `json:"totals"`
}

// DailyLedgerSnapshot is the user's intake before this meal, read fresh per request.
type DailyLedgerSnapshot struct {
	Date      time.Time `json:"date"`
	UserID    uint      `json:"user_id"`
	Totals    Nutrients `json:"totals_before_this_meal"`
	MealCount int       `json:"meal_count_today"`
}

type ConditionRating struct {
	Condition   string `json:"condition"`
	Rating      string `json:"rating"` // safe | caution | limit
	Metric      string `json:"metric_cited"`
	Explanation string `json:"explanation"`
}

type GlucoseImpact struct {
	Level      string `json:"level"` // low | moderate | high | very_high
	PeakWindow string `json:"peak_window"`
	Reason     string `json:"reason"`
}

type AdvisoryResult struct {
	MainAdvice string            `json:"main_advice"`
	Ratings    []ConditionRating `json:"per_condition_ratings"`
	Glucose    GlucoseImpact     `json:"glucose_impact"`
	Tip        string            `json:"tip"`
	Fallback   bool              `json:"fallback"` // true when the templated advisory was used
}

// AnalysisResult is the composed response handed back to the caller.
// Unresolvable fields carry explicit unknown/default values, never nulls.
type AnalysisResult struct {
	ID                        string              `json:"id"`
	Food                      ResolvedFood        `json:"food"`
	Halal                     HalalAssessment     `json:"halal"`
	Meal                      PortionAdjustedMeal `json:"meal"`
	Ledger                    DailyLedgerSnapshot `json:"ledger"`
	Advisory                  AdvisoryResult      `json:"advisory"`
	PhotoURL                  string              `json:"photo_url,omitempty"`
	RequiresHalalConfirmation bool                `json:"requires_halal_confirmation"`
}
