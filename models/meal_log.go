package models

import "time"

// MealLog is one ledger entry. TotalCalories is computed from the catalog at
// log time and frozen; later FoodItem edits do not change it.
type MealLog struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	FoodID        uint      `gorm:"not null"`
	Food          FoodItem  `gorm:"foreignKey:FoodID"`
	MealType      string    // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	Date          time.Time `gorm:"index;not null"`
	Quantity      float64
	TotalCalories float64
	Deleted       bool `gorm:"index;default:false"`
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
