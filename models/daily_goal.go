package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds a user's daily macro targets.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
}
