package services

import (
	"context"

	"github.com/ayiqazmi/MyCalorie/config"
	"github.com/ayiqazmi/MyCalorie/models"
	"github.com/ayiqazmi/MyCalorie/planner"
)

// CatalogService serves the curated regional food catalog out of
// Postgres. It is the second candidate source for plan generation.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// AllFoods loads the whole catalog and normalizes it for the planner.
// The table stays small (hundreds of rows), so a full scan per
// generation is fine.
func (s *CatalogService) AllFoods(ctx context.Context) ([]planner.FoodCandidate, error) {
	var foods []models.Food
	if err := config.DB.WithContext(ctx).Find(&foods).Error; err != nil {
		return nil, err
	}

	out := make([]planner.FoodCandidate, 0, len(foods))
	for _, f := range foods {
		out = append(out, planner.FoodCandidate{
			Name:        f.Name,
			Calories:    f.Calories,
			Protein:     f.Protein,
			Carbs:       f.Carbs,
			Fat:         f.Fat,
			VitaminC:    f.VitaminC,
			Calcium:     f.Calcium,
			Iron:        f.Iron,
			Potassium:   f.Potassium,
			Fiber:       f.Fiber,
			Sugar:       f.Sugar,
			Ingredients: f.Ingredients,
			Source:      planner.SourceRegionalCatalog,
			Image:       f.ImageURL,
		})
	}
	return out, nil
}

func (s *CatalogService) ListFoods() ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.Order("name").Find(&foods).Error
	return foods, err
}

func (s *CatalogService) SubmitFood(food *models.Food) error {
	return config.DB.Create(food).Error
}
