package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSimilarity(t *testing.T) {
	cases := []struct {
		query, label string
		want         float64
	}{
		{"nasi lemak", "nasi lemak", 1.0},
		{"Nasi Lemak", "nasi lemak", 1.0},
		{"chicken rice", "Hainanese chicken rice", 0.85},
		{"fried chicken rice", "chicken fried noodles", 2.0 * 2 / 6}, // 2 common tokens of 3+3
		{"pizza", "laksa", 0},
		{"", "anything", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, TokenSimilarity(tc.query, tc.label), 0.01,
			"TokenSimilarity(%q, %q)", tc.query, tc.label)
	}
}

const parserHintsBody = `{"hints": [
	{"food": {"foodId": "a", "label": "Rice Porridge", "category": "Generic foods",
		"nutrients": {"ENERC_KCAL": 90, "PROCNT": 3, "CHOCDF": 18, "FAT": 1}}},
	{"food": {"foodId": "b", "label": "Chicken Rice", "category": "Generic meals",
		"nutrients": {"ENERC_KCAL": 180, "PROCNT": 12, "CHOCDF": 22, "FAT": 5, "FIBTG": 1}}}
]}`

func TestEdamamLookupFetchesFullVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/parser"):
			assert.Equal(t, "chicken rice", r.URL.Query().Get("ingr"))
			w.Write([]byte(parserHintsBody))
		case strings.HasSuffix(r.URL.Path, "/nutrients"):
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"foodId":"b"`, "the best hint's id is analyzed")
			w.Write([]byte(`{"totalNutrients": {
				"ENERC_KCAL": {"quantity": 607}, "PROCNT": {"quantity": 32},
				"CHOCDF": {"quantity": 76}, "FAT": {"quantity": 19},
				"FASAT": {"quantity": 6}, "NA": {"quantity": 1280},
				"SUGAR": {"quantity": 3}, "CHOLE": {"quantity": 105},
				"P": {"quantity": 300}, "K": {"quantity": 480},
				"FIBTG": {"quantity": 2}
			}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	t.Setenv("EDAMAM_BASE_URL", srv.URL)
	svc := NewEdamamService()

	match, err := svc.Lookup(context.Background(), "chicken rice")
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, "Chicken Rice", match.Name)
	assert.InDelta(t, 1.0, match.Confidence, 0.001)
	assert.Equal(t, "1 serving", match.Serving)
	assert.InDelta(t, 607, match.Nutrients.Calories, 0.001)
	assert.InDelta(t, 1280, match.Nutrients.Sodium, 0.001, "micros come from the nutrients endpoint")
	assert.InDelta(t, 6, match.Nutrients.SatFat, 0.001)
	assert.InDelta(t, 105, match.Nutrients.Cholesterol, 0.001)
	assert.InDelta(t, 300, match.Nutrients.Phosphorus, 0.001)
	assert.InDelta(t, 480, match.Nutrients.Potassium, 0.001)
}

func TestEdamamLookupFallsBackToParserMacros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/parser") {
			w.Write([]byte(parserHintsBody))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	t.Setenv("EDAMAM_BASE_URL", srv.URL)
	svc := NewEdamamService()

	match, err := svc.Lookup(context.Background(), "chicken rice")
	require.NoError(t, err, "a down nutrients endpoint degrades, it does not lose the match")
	require.NotNil(t, match)

	assert.Equal(t, "100 g", match.Serving)
	assert.InDelta(t, 180, match.Nutrients.Calories, 0.001)
	assert.InDelta(t, 1, match.Nutrients.Fiber, 0.001)
}

func TestEdamamLookupNoHints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hints": []}`))
	}))
	defer srv.Close()

	t.Setenv("EDAMAM_BASE_URL", srv.URL)
	svc := NewEdamamService()

	match, err := svc.Lookup(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Nil(t, match, "no hints is a miss, not an error")
}

func TestEdamamLookupAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	t.Setenv("EDAMAM_BASE_URL", srv.URL)
	svc := NewEdamamService()

	_, err := svc.Lookup(context.Background(), "chicken rice")
	assert.Error(t, err)
}
