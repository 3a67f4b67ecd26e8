package services

import (
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

type ExerciseService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewExerciseService(db *gorm.DB, progress *ProgressService) *ExerciseService {
	return &ExerciseService{db: db, progress: progress}
}

func (s *ExerciseService) ListExercises() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.Where("deleted = ?", false).Find(&exercises).Error
	return exercises, err
}

func (s *ExerciseService) CreateExercise(name string, caloriesBurnedPerMinute float64) (*models.Exercise, error) {
	exercise := models.Exercise{
		Name:                    name,
		CaloriesBurnedPerMinute: caloriesBurnedPerMinute,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *ExerciseService) DeleteExercise(exerciseID uint) error {
	var exercise models.Exercise
	if err := s.db.
		Where("id = ? AND deleted = ?", exerciseID, false).
		First(&exercise).Error; err != nil {
		return err
	}

	now := time.Now()
	return s.db.Model(&exercise).
		Updates(map[string]interface{}{"deleted": true, "deleted_at": now}).Error
}

// LogExercise freezes the burn snapshot and bumps the aggregate for the log's
// stated date, which need not be today.
func (s *ExerciseService) LogExercise(userID, exerciseID uint, duration float64, date time.Time) (*models.ExerciseLog, error) {
	var exercise models.Exercise
	if err := s.db.
		Where("id = ? AND deleted = ?", exerciseID, false).
		First(&exercise).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}

	caloriesBurned := exercise.CaloriesBurnedPerMinute * duration

	log := models.ExerciseLog{
		UserID:         userID,
		ExerciseID:     exercise.ID,
		Date:           date,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	if err := s.progress.AddBurned(userID, date, caloriesBurned); err != nil {
		return nil, err
	}

	log.Exercise = exercise
	return &log, nil
}

func (s *ExerciseService) ListLogs(userID uint, date time.Time) ([]models.ExerciseLog, error) {
	var logs []models.ExerciseLog
	err := s.db.
		Preload("Exercise").
		Where("user_id = ? AND date >= ? AND date <= ? AND deleted = ?",
			userID, DayStart(date), dayEnd(date), false).
		Find(&logs).Error
	return logs, err
}

func (s *ExerciseService) DeleteLog(userID, logID uint) error {
	var log models.ExerciseLog
	if err := s.db.
		Where("id = ? AND user_id = ? AND deleted = ?", logID, userID, false).
		First(&log).Error; err != nil {
		return err
	}

	now := time.Now()
	if err := s.db.Model(&log).
		Updates(map[string]interface{}{"deleted": true, "deleted_at": now}).Error; err != nil {
		return err
	}

	return s.progress.RemoveBurned(userID, log.Date, log.CaloriesBurned)
}

// BurnedOn sums the frozen burn of the day's non-deleted exercise logs.
func (s *ExerciseService) BurnedOn(userID uint, date time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.ExerciseLog{}).
		Where("user_id = ? AND date >= ? AND date < ? AND deleted = ?",
			userID, DayStart(date), DayStart(date).AddDate(0, 0, 1), false).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&total).Error
	return total, err
}
