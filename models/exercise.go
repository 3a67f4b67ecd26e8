package models

import "time"

type Exercise struct {
	ID                      uint   `gorm:"primaryKey"`
	Name                    string `gorm:"not null"`
	CaloriesBurnedPerMinute float64
	Deleted                 bool `gorm:"index;default:false"`
	DeletedAt               *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
