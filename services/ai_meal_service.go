package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ayiqazmi/MyCalorie/planner"
)

// AIMealService asks a hosted text-generation model for a one-line
// meal suggestion. It is only used as a fallback when a generated slot
// comes back empty; failures are tolerated by callers.
type AIMealService struct {
	client  *http.Client
	token   string
	model   string
	baseURL string
}

func NewAIMealService() *AIMealService {
	return &AIMealService{
		client:  &http.Client{Timeout: 15 * time.Second},
		token:   os.Getenv("HUGGINGFACE_TOKEN"),
		model:   "google/flan-t5-small",
		baseURL: "https://api-inference.huggingface.co/models/",
	}
}

// SuggestMeal returns a short suggestion for one empty slot, honoring
// the slot's calorie budget and the profile's allergies and goal.
func (a *AIMealService) SuggestMeal(ctx context.Context, slot string, slotCalories float64, profile planner.Profile) (string, error) {
	if a.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	var sb bytes.Buffer
	fmt.Fprintf(&sb, "Suggest one Malaysian %s of about %.0f kcal for a %s goal.",
		slot, slotCalories, profile.HealthGoal)
	if len(profile.Allergies) > 0 {
		fmt.Fprintf(&sb, " Avoid: %s.", strings.Join(profile.Allergies, ", "))
	}
	sb.WriteString(" Reply with the dish name and a few words only.")

	payload := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 48,
			"temperature":    0.4,
		},
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+a.model, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty suggestion from hf")
	}
	return strings.TrimSpace(hfOut[0].GeneratedText), nil
}
