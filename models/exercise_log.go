package models

import "time"

// ExerciseLog is one ledger entry. CaloriesBurned is frozen at log time.
type ExerciseLog struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null"`
	ExerciseID     uint      `gorm:"not null"`
	Exercise       Exercise  `gorm:"foreignKey:ExerciseID"`
	Date           time.Time `gorm:"index;not null"`
	Duration       float64   // minutes
	CaloriesBurned float64
	Deleted        bool `gorm:"index;default:false"`
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
