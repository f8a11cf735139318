package planner

import "context"

// Food source tags. Normalization happens at the adapter boundary, so
// nothing downstream branches on Source.
const (
	SourceGenericDB       = "generic-db"
	SourceRegionalCatalog = "regional-catalog"
)

// FoodCandidate is one food available for placement into a meal slot.
// Missing numeric fields are simply zero; a candidate with no macro
// data at all still ranks (at the bottom) rather than erroring.
type FoodCandidate struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	VitaminC    float64 `json:"vitaminC,omitempty"`
	Calcium     float64 `json:"calcium,omitempty"`
	Iron        float64 `json:"iron,omitempty"`
	Potassium   float64 `json:"potassium,omitempty"`
	Fiber       float64 `json:"fiber,omitempty"`
	Sugar       float64 `json:"sugar,omitempty"`
	Ingredients string  `json:"ingredients,omitempty"`
	Source      string  `json:"source,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// GenericSource is a free-text nutrition database (e.g. USDA FoodData
// Central). The orchestrator issues one search per goal-derived term.
type GenericSource interface {
	SearchFoods(ctx context.Context, term string) ([]FoodCandidate, error)
}

// CatalogSource is the curated regional food catalog. The catalog is
// small enough that a full scan per generation is fine.
type CatalogSource interface {
	AllFoods(ctx context.Context) ([]FoodCandidate, error)
}
