package models

import "gorm.io/gorm"

// Food is one entry of the curated regional catalog (the app's
// Malaysian food table). Macro values are grams per serving.
type Food struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	VitaminC    float64
	Calcium     float64
	Iron        float64
	Potassium   float64
	Fiber       float64
	Sugar       float64
	Ingredients string
	ImageURL    string
	SubmittedBy uint `gorm:"index"` // user who submitted, 0 for seeded rows
}
