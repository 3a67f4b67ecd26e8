package models

import (
	"gorm.io/gorm"
)

// UserProfile drives the BMR/TDEE computation behind exercise
// recommendations. One row per user.
type UserProfile struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex;not null"`
	Name           string
	Age            int
	Weight         float64 // kg
	Height         float64 // cm
	Gender         string  // "male" | "female"
	Goal           string  // e.g. "lose_weight"
	ActivityLevel  string  // sedentary|light|moderate|active|veryActive
	ProfilePicture string
}
