package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// GenericCatalog is the large, low-curation food catalog. It loses to any
// curated match and must clear a confidence threshold to beat inference.
type GenericCatalog interface {
	Lookup(ctx context.Context, query string) (*GenericMatch, error)
}

// GenericMatch is one generic-catalog candidate with its similarity confidence.
type GenericMatch struct {
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Nutrients  models.Nutrients `json:"nutrients"`
	Serving    string           `json:"serving"`
	Confidence float64          `json:"confidence"`
}

const measureServingURI = "http://www.edamam.com/ontologies/edamam.owl#Measure_serving"

type EdamamService struct {
	appID       string
	appKey      string
	nutriAppID  string
	nutriAppKey string
	base        string
	client      *http.Client
}

func NewEdamamService() *EdamamService {
	base := os.Getenv("EDAMAM_BASE_URL")
	if base == "" {
		base = "https://api.edamam.com"
	}
	appID := os.Getenv("EDAMAM_APP_ID")
	appKey := os.Getenv("EDAMAM_APP_KEY")
	nutriID := os.Getenv("EDAMAM_NUTRI_APP_ID")
	nutriKey := os.Getenv("EDAMAM_NUTRI_APP_KEY")
	if nutriID == "" {
		nutriID, nutriKey = appID, appKey
	}
	return &EdamamService{
		appID:       appID,
		appKey:      appKey,
		nutriAppID:  nutriID,
		nutriAppKey: nutriKey,
		base:        base,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Category  string             `json:"category"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

type nutritionResponse struct {
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// Lookup queries the food-database parser endpoint, picks the hint most
// similar to the query, then calls the nutrients endpoint for that hint's
// full per-serving nutrient vector (the parser only reports core macros).
// Edamam reports no match score, so confidence is a locally computed
// token-overlap similarity between query and label.
func (s *EdamamService) Lookup(ctx context.Context, query string) (*GenericMatch, error) {
	u := fmt.Sprintf(
		"%s/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		s.base, url.QueryEscape(query), s.appID, s.appKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call food parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food parser JSON: %w", err)
	}
	if len(pr.Hints) == 0 {
		return nil, nil
	}

	best, bestScore := 0, -1.0
	for i, h := range pr.Hints {
		if score := TokenSimilarity(query, h.Food.Label); score > bestScore {
			best, bestScore = i, score
		}
	}
	hint := pr.Hints[best].Food

	match := &GenericMatch{
		Name:     hint.Label,
		Category: hint.Category,
		Nutrients: models.Nutrients{
			Calories: hint.Nutrients["ENERC_KCAL"],
			Protein:  hint.Nutrients["PROCNT"],
			Carbs:    hint.Nutrients["CHOCDF"],
			Fat:      hint.Nutrients["FAT"],
			Fiber:    hint.Nutrients["FIBTG"],
		},
		Serving:    "100 g",
		Confidence: bestScore,
	}

	// Best-effort second call: an unavailable nutrients endpoint degrades to
	// the parser's partial macro vector rather than losing the match.
	if hint.FoodID != "" {
		if full, err := s.fetchNutrients(ctx, hint.FoodID); err == nil {
			match.Nutrients = full
			match.Serving = "1 serving"
		}
	}
	return match, nil
}

// fetchNutrients posts one ingredient to the nutrients endpoint and maps the
// totalNutrients codes into the full per-serving vector.
func (s *EdamamService) fetchNutrients(ctx context.Context, foodID string) (models.Nutrients, error) {
	payload := map[string]interface{}{
		"ingredients": []map[string]interface{}{{
			"quantity":   1,
			"measureURI": measureServingURI,
			"foodId":     foodID,
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	u := fmt.Sprintf(
		"%s/api/food-database/v2/nutrients?app_id=%s&app_key=%s",
		s.base, s.nutriAppID, s.nutriAppKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Nutrients{}, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	q := func(code string) float64 { return nr.TotalNutrients[code].Quantity }
	return models.Nutrients{
		Calories:    q("ENERC_KCAL"),
		Protein:     q("PROCNT"),
		Carbs:       q("CHOCDF"),
		Fat:         q("FAT"),
		SatFat:      q("FASAT"),
		Sodium:      q("NA"),
		Sugar:       q("SUGAR"),
		Cholesterol: q("CHOLE"),
		Phosphorus:  q("P"),
		Potassium:   q("K"),
		Fiber:       q("FIBTG"),
	}, nil
}

// TokenSimilarity scores how well a catalog label answers a query: exact match
// scores 1.0, substring containment 0.85, otherwise the Dice coefficient of
// the two token sets.
func TokenSimilarity(query, label string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	l := strings.ToLower(strings.TrimSpace(label))
	if q == "" || l == "" {
		return 0
	}
	if q == l {
		return 1.0
	}
	if strings.Contains(l, q) || strings.Contains(q, l) {
		return 0.85
	}

	qt := strings.Fields(q)
	lt := strings.Fields(l)
	set := make(map[string]bool, len(qt))
	for _, t := range qt {
		set[t] = true
	}
	common := 0
	for _, t := range lt {
		if set[t] {
			common++
		}
	}
	if common == 0 {
		return 0
	}
	return 2.0 * float64(common) / float64(len(qt)+len(lt))
}
