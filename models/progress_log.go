package models

import "time"

// ProgressLog is the per-(user, day) rollup of the meal and exercise ledgers.
// Rows are created lazily on the first log of a day and only ever mutated via
// atomic column increments; CaloriesConsumed/CaloriesBurned must equal the sum
// over the day's non-deleted ledger entries.
type ProgressLog struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"uniqueIndex:idx_progress_user_date;not null"`
	Date             time.Time `gorm:"uniqueIndex:idx_progress_user_date;not null"` // local midnight
	CaloriesConsumed float64
	CaloriesBurned   float64
	Weight           float64
	Deleted          bool `gorm:"index;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
