package models

import (
	"gorm.io/gorm"
)

// UserPreferences holds the daily intake targets. DietaryRestrictions is a
// comma-separated list of food category labels to exclude.
type UserPreferences struct {
	gorm.Model
	UserID              uint `gorm:"uniqueIndex;not null"`
	DietaryRestrictions string
	DailyCalorieGoal    float64
	WaterIntakeGoal     float64
}
