package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ayiqazmi/MyCalorie/planner"
)

// USDAService queries the USDA FoodData Central search endpoint. It is
// the generic free-text food source for plan generation.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey:  os.Getenv("USDA_API_KEY"),
		baseURL: "https://api.nal.usda.gov/fdc/v1/foods/search",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type fdcSearchResponse struct {
	Foods []struct {
		Description   string `json:"description"`
		DataType      string `json:"dataType"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// Raw ingredients and branded junk dominate FDC results; keep only
// descriptions that look like prepared dishes.
var (
	reSkipFood = regexp.MustCompile(`(?i)raw|unprepared|baby|dry|frozen`)
	reDishFood = regexp.MustCompile(`(?i)scrambled|grilled|boiled|roasted|fried|baked|stir|salad|sandwich|soup|cooked|prepared|recipe`)
)

const maxResultsPerTerm = 5

// SearchFoods runs one free-text search and normalizes the results to
// the planner's candidate shape. Extra source-specific fields are
// dropped here so nothing downstream knows about FDC.
func (s *USDAService) SearchFoods(ctx context.Context, term string) ([]planner.FoodCandidate, error) {
	if strings.TrimSpace(term) == "" {
		return nil, nil
	}

	u := fmt.Sprintf("%s?query=%s&api_key=%s&pageSize=10",
		s.baseURL, url.QueryEscape(term), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create FDC request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call FDC search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FDC response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FDC search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr fdcSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse FDC JSON: %w", err)
	}

	results := make([]planner.FoodCandidate, 0, maxResultsPerTerm)
	for _, f := range sr.Foods {
		if f.DataType == "Branded" || reSkipFood.MatchString(f.Description) || !reDishFood.MatchString(f.Description) {
			continue
		}

		c := planner.FoodCandidate{
			Name:   f.Description,
			Source: planner.SourceGenericDB,
			Image:  "https://source.unsplash.com/featured/?" + strings.ReplaceAll(term, " ", ","),
		}
		for _, n := range f.FoodNutrients {
			switch n.NutrientName {
			case "Energy":
				c.Calories = n.Value
			case "Protein":
				c.Protein = n.Value
			case "Carbohydrate, by difference":
				c.Carbs = n.Value
			case "Total lipid (fat)":
				c.Fat = n.Value
			case "Vitamin C, total ascorbic acid":
				c.VitaminC = n.Value
			case "Calcium, Ca":
				c.Calcium = n.Value
			case "Iron, Fe":
				c.Iron = n.Value
			case "Potassium, K":
				c.Potassium = n.Value
			case "Fiber, total dietary":
				c.Fiber = n.Value
			case "Sugars, total including NLEA":
				c.Sugar = n.Value
			}
		}

		results = append(results, c)
		if len(results) == maxResultsPerTerm {
			break
		}
	}
	return results, nil
}
