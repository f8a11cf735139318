package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ayiqazmi/MyCalorie/config"
	"github.com/ayiqazmi/MyCalorie/models"
	"github.com/ayiqazmi/MyCalorie/planner"
)

// ErrEmptyPlan means generation produced nothing for any slot even
// after retries, usually because both food sources were unavailable.
// Callers surface it as "could not build a plan today", not a crash.
var ErrEmptyPlan = errors.New("meal plan is empty after retries")

const regenerateAttempts = 3

// PlanService ties the planner to its sources and owns persistence of
// generated days. The planner itself never touches the database.
type PlanService struct {
	generic planner.GenericSource
	catalog planner.CatalogSource
	ai      *AIMealService
}

func NewPlanService() *PlanService {
	return &PlanService{
		generic: NewUSDAService(),
		catalog: NewCatalogService(),
		ai:      NewAIMealService(),
	}
}

// PlanResponse is what the API hands back for one day.
type PlanResponse struct {
	Plan        planner.DailyMealPlan `json:"plan"`
	CreatedAt   string                `json:"createdAt"`
	Fallback    bool                  `json:"fallback,omitempty"`
	Suggestions map[string]string     `json:"suggestions,omitempty"`
}

func profileFor(user *models.User) planner.Profile {
	return planner.Profile{
		Allergies:           models.SplitCSV(user.Allergies),
		HealthComplications: models.SplitCSV(user.HealthComplications),
		HealthGoal:          user.HealthGoal,
		CaloriesGoal:        user.TargetCalories,
	}
}

// PlanForDate returns the stored plan for (user, date), generating and
// persisting one when the day has none yet. The date key seeds the
// shuffle, so the first generation of a given day is reproducible.
func (s *PlanService) PlanForDate(ctx context.Context, user *models.User, date time.Time) (*PlanResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var row models.MealPlan
	err := config.DB.Where("user_id = ? AND date = ?", user.ID, day).First(&row).Error
	if err == nil {
		var plan planner.DailyMealPlan
		if jerr := json.Unmarshal([]byte(row.PlanJSON), &plan); jerr != nil {
			return nil, fmt.Errorf("stored plan for %s is corrupt: %w", day.Format(time.DateOnly), jerr)
		}
		return &PlanResponse{Plan: plan, CreatedAt: row.GeneratedAt, Fallback: row.Fallback}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res, err := s.generateWithRetry(ctx, profileFor(user), day.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	if err := s.save(user.ID, day, res); err != nil {
		return nil, err
	}
	EmitAlert(user.ID, "plan.created", "Your meal plan for "+day.Format(time.DateOnly)+" is ready")
	return s.respond(ctx, profileFor(user), res), nil
}

// Regenerate replaces the stored plan for the date with a fresh one.
// The seed comes from the current timestamp, so each regeneration is a
// deliberately different arrangement.
func (s *PlanService) Regenerate(ctx context.Context, user *models.User, date time.Time) (*PlanResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	variantKey := fmt.Sprintf("%x", time.Now().UnixNano())
	res, err := s.generateWithRetry(ctx, profileFor(user), variantKey)
	if err != nil {
		return nil, err
	}
	if err := s.save(user.ID, day, res); err != nil {
		return nil, err
	}
	EmitAlert(user.ID, "plan.regenerated", "Your meal plan for "+day.Format(time.DateOnly)+" was regenerated")
	return s.respond(ctx, profileFor(user), res), nil
}

// generateWithRetry is the bounded retry combinator around the
// planner: up to 3 attempts, a derived fresh seed per retry, stopping
// at the first non-empty plan. An incomplete profile aborts
// immediately; all-empty after the last attempt is ErrEmptyPlan.
func (s *PlanService) generateWithRetry(ctx context.Context, profile planner.Profile, seedKey string) (*planner.Result, error) {
	var res *planner.Result
	for attempt := 1; attempt <= regenerateAttempts; attempt++ {
		key := seedKey
		if attempt > 1 {
			key = fmt.Sprintf("%s#%d", seedKey, attempt)
		}

		var err error
		res, err = planner.Generate(ctx, profile, planner.SeedFromKey(key), s.generic, s.catalog)
		if err != nil {
			return nil, err
		}
		if !planner.IsEmpty(&res.Plan) {
			return res, nil
		}
		log.Printf("[plan] attempt %d/%d produced an empty plan, retrying", attempt, regenerateAttempts)
	}
	return nil, ErrEmptyPlan
}

func (s *PlanService) save(userID uint, day time.Time, res *planner.Result) error {
	planJSON, err := json.Marshal(res.Plan)
	if err != nil {
		return err
	}

	row := models.MealPlan{UserID: userID, Date: day}
	return config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.MealPlan{
			PlanJSON:    string(planJSON),
			GeneratedAt: res.CreatedAt,
			Fallback:    res.Fallback,
		}).
		FirstOrCreate(&row).Error
}

// respond shapes the API payload and, best effort, asks the text model
// for a suggestion on any slot that came back empty.
func (s *PlanService) respond(ctx context.Context, profile planner.Profile, res *planner.Result) *PlanResponse {
	out := &PlanResponse{Plan: res.Plan, CreatedAt: res.CreatedAt, Fallback: res.Fallback}
	budgets := planner.SlotBudgets(profile.CaloriesGoal)

	for _, slot := range planner.Slots {
		if len(res.Plan.Slot(slot)) > 0 {
			continue
		}
		text, err := s.ai.SuggestMeal(ctx, slot, budgets[slot], profile)
		if err != nil {
			log.Printf("[plan] suggestion for empty %s slot failed: %v", slot, err)
			continue
		}
		if out.Suggestions == nil {
			out.Suggestions = make(map[string]string)
		}
		out.Suggestions[slot] = text
	}
	return out
}
