package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Dietary profile used by plan generation. Allergies and
	// complications are stored comma-separated, same shape as the
	// mobile app's profile document.
	Allergies           string
	HealthComplications string
	HealthGoal          string  // "lose" | "maintain" | "gain"
	TargetCalories      float64 // daily kcal goal
}

// SplitCSV turns a stored comma-separated field into trimmed terms.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinCSV is the inverse of SplitCSV for writes.
func JoinCSV(terms []string) string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}
