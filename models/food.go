package models

import "time"

// FoodItem is read-heavy catalog data: cached on read, soft-deleted on
// removal. Edits never rewrite the calories frozen into past meal logs.
type FoodItem struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Category    string `gorm:"index"`
	Calories    float64
	Carbs       float64
	Protein     float64
	Fat         float64
	ServingSize string
	Deleted     bool `gorm:"index;default:false"`
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
