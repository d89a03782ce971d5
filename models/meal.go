package models

import (
	"gorm.io/gorm"
)

// LoggedMeal is one personal nutrition log entry.
//
// LogDate is assigned once at creation from the device's local clock and is
// the sole key for the today/week rollups; it is never recomputed from
// CreatedAt.
type LoggedMeal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	LoggedAt string  `json:"time"`                        // display string, e.g. "8:05 AM"
	LogDate  string  `gorm:"size:10;index" json:"date"`   // ISO YYYY-MM-DD
	MealType string  `gorm:"size:32" json:"meal_type"`    // free-text tag ("Breakfast", …)
}
