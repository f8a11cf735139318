package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPlan is one generated day, keyed by user and date. PlanJSON
// holds the four-slot plan exactly as the planner returned it.
// AdjustedJSON is a parallel variant written by admin tooling; plan
// generation never reads it.
type MealPlan struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_meal_plans_user_date;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_meal_plans_user_date;not null"`

	PlanJSON     string `gorm:"type:jsonb;not null"`
	AdjustedJSON string `gorm:"type:jsonb"`
	GeneratedAt  string // RFC 3339 timestamp from the planner
	Fallback     bool   // allergy filtering was bypassed for this day
}
