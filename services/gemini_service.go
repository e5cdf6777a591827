package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// InferenceClient is the vision/text inference surface the pipeline depends on.
// GeminiService is the production implementation; tests substitute fakes.
type InferenceClient interface {
	// Identify names a food from an image or free text and estimates its nutrients.
	Identify(ctx context.Context, input models.MealInput) (*models.InferenceResult, error)
	// ValidateText classifies free text as food/not-food and cleans the name.
	ValidateText(ctx context.Context, text string) (*TextValidation, error)
	// Generate runs a raw text prompt and returns the model's text output.
	Generate(ctx context.Context, prompt string) (string, error)
}

type TextValidation struct {
	IsFood     bool   `json:"is_food"`
	Name       string `json:"cleaned_name"`
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

type GeminiService struct {
	apiKey string
	model  string
	client *http.Client
}

const (
	geminiMaxAttempts  = 3
	geminiBackoff      = 500 * time.Millisecond
	defaultGeminiModel = "gemini-1.5-flash"
)

func NewGeminiService() *GeminiService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// endpoint is overridable for tests.
func (g *GeminiService) endpoint() string {
	if base := os.Getenv("GEMINI_BASE_URL"); base != "" {
		return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, g.model, g.apiKey)
	}
	return fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)
}

// generate posts the parts to the generateContent endpoint with bounded
// retries. Transient failures (network, 429, 5xx) are retried with backoff;
// anything else fails immediately.
func (g *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 1; attempt <= geminiMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(geminiBackoff * time.Duration(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = err
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("gemini api error %d: %s", resp.StatusCode, string(raw))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, string(raw))
		}

		var result struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
		}
		if err := json.Unmarshal(raw, &result); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInferenceMalformed, err)
		}
		if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("%w: empty candidates", ErrInferenceMalformed)
		}
		return result.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("%w: %v", ErrInferenceUnavailable, lastErr)
}

func (g *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, []geminiPart{{Text: prompt}})
}

func (g *GeminiService) ValidateText(ctx context.Context, text string) (*TextValidation, error) {
	out, err := g.generate(ctx, []geminiPart{{Text: BuildValidatePrompt(text)}})
	if err != nil {
		return nil, err
	}

	var tv TextValidation
	if err := json.Unmarshal([]byte(stripJSONFences(out)), &tv); err != nil {
		return nil, fmt.Errorf("%w: validate: %v", ErrInferenceMalformed, err)
	}
	if tv.Name == "" {
		tv.Name = strings.TrimSpace(text)
	}
	return &tv, nil
}

func (g *GeminiService) Identify(ctx context.Context, input models.MealInput) (*models.InferenceResult, error) {
	var parts []geminiPart
	switch input.Kind {
	case models.InputImage:
		mimeType, data, err := splitDataURI(input.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		parts = []geminiPart{
			{Text: BuildIdentifyPrompt("")},
			{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
		}
	case models.InputText:
		parts = []geminiPart{{Text: BuildIdentifyPrompt(input.Payload)}}
	default:
		return nil, fmt.Errorf("%w: unsupported input kind %q", ErrInvalidInput, input.Kind)
	}

	out, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	var res models.InferenceResult
	if err := json.Unmarshal([]byte(stripJSONFences(out)), &res); err != nil {
		return nil, fmt.Errorf("%w: identify: %v", ErrInferenceMalformed, err)
	}
	if strings.TrimSpace(res.Name) == "" {
		return nil, fmt.Errorf("%w: identify: empty candidate name", ErrInferenceMalformed)
	}
	normalizeInference(&res)
	return &res, nil
}

func normalizeInference(res *models.InferenceResult) {
	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	if res.Portion.Multiplier <= 0 {
		res.Portion.Multiplier = 1.0
	}
	if res.Portion.SizeCategory == "" {
		res.Portion.SizeCategory = "regular"
	}
	res.DetectedProtein = strings.ToLower(strings.TrimSpace(res.DetectedProtein))
}

// stripJSONFences removes markdown code fences the model sometimes wraps
// around an otherwise valid JSON body.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func splitDataURI(uri string) (mimeType, data string, err error) {
	parts := strings.Split(uri, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		return "", "", errors.New("image payload must be a data URI")
	}
	mediaType := strings.SplitN(parts[0], ":", 2)[1]
	mimeType = strings.SplitN(mediaType, ";", 2)[0]
	return mimeType, parts[1], nil
}
