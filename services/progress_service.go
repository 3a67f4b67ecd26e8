package services

import (
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

// Progress column names, used in atomic increment expressions.
const (
	colConsumed = "calories_consumed"
	colBurned   = "calories_burned"
)

// ProgressService maintains the per-(user, day) rollup. All mutations are
// single conditional UPDATEs (col = col + delta) so concurrent logs for the
// same user/day serialize at the storage layer without lost updates.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return DayStart(t).Add(24*time.Hour - time.Nanosecond)
}

// AddConsumed increments the day's consumed calories, creating the row with
// the other metrics zeroed if this is the first log of the day.
func (s *ProgressService) AddConsumed(userID uint, day time.Time, delta float64) error {
	return s.bump(userID, day, colConsumed, delta)
}

// AddBurned increments the day's burned calories.
func (s *ProgressService) AddBurned(userID uint, day time.Time, delta float64) error {
	return s.bump(userID, day, colBurned, delta)
}

// RemoveConsumed compensates a soft-deleted meal log. A missing aggregate row
// is a silent no-op, not an error.
func (s *ProgressService) RemoveConsumed(userID uint, day time.Time, delta float64) error {
	return s.discount(userID, day, colConsumed, delta)
}

// RemoveBurned compensates a soft-deleted exercise log.
func (s *ProgressService) RemoveBurned(userID uint, day time.Time, delta float64) error {
	return s.discount(userID, day, colBurned, delta)
}

// SetWeight records the day's weigh-in, upserting the aggregate row.
func (s *ProgressService) SetWeight(userID uint, day time.Time, weight float64) error {
	start := DayStart(day)
	res := s.db.Model(&models.ProgressLog{}).
		Where("user_id = ? AND date = ?", userID, start).
		UpdateColumn("weight", weight)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := models.ProgressLog{UserID: userID, Date: start, Weight: weight}
	if err := s.db.Create(&row).Error; err != nil {
		// lost the creation race; the row exists now
		return s.db.Model(&models.ProgressLog{}).
			Where("user_id = ? AND date = ?", userID, start).
			UpdateColumn("weight", weight).Error
	}
	return nil
}

// Rows returns the user's non-deleted aggregate rows for [from, to] ascending.
func (s *ProgressService) Rows(userID uint, from, to time.Time) ([]models.ProgressLog, error) {
	var rows []models.ProgressLog
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ? AND deleted = ?",
			userID, DayStart(from), dayEnd(to), false).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ProgressService) bump(userID uint, day time.Time, column string, delta float64) error {
	start := DayStart(day)
	res := s.db.Model(&models.ProgressLog{}).
		Where("user_id = ? AND date = ?", userID, start).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := models.ProgressLog{UserID: userID, Date: start}
	switch column {
	case colConsumed:
		row.CaloriesConsumed = delta
	case colBurned:
		row.CaloriesBurned = delta
	}
	if err := s.db.Create(&row).Error; err != nil {
		// Unique (user_id, date) index rejected a concurrent first-log
		// race; the row exists now, so apply the increment instead.
		return s.db.Model(&models.ProgressLog{}).
			Where("user_id = ? AND date = ?", userID, start).
			UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
	}
	return nil
}

func (s *ProgressService) discount(userID uint, day time.Time, column string, delta float64) error {
	return s.db.Model(&models.ProgressLog{}).
		Where("user_id = ? AND date = ?", userID, DayStart(day)).
		UpdateColumn(column, gorm.Expr(column+" - ?", delta)).Error
}
