// services/meal_service.go
package services

import (
	"errors"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewMealService(db *gorm.DB, progress *ProgressService) *MealService {
	return &MealService{db: db, progress: progress}
}

// DailySummary is the display-side recomputation of a day's intake. It must
// agree with ProgressLog.CaloriesConsumed for the same day.
type DailySummary struct {
	TotalCalories     float64  `json:"total_calories"`
	TotalCarbs        float64  `json:"total_carbs"`
	TotalProtein      float64  `json:"total_protein"`
	TotalFat          float64  `json:"total_fat"`
	RemainingCalories *float64 `json:"remaining_calories"`
}

// LogMeal freezes the calorie snapshot from the catalog and bumps today's
// aggregate. A soft-deleted food item counts as not found.
func (s *MealService) LogMeal(userID, foodID uint, mealType string, quantity float64) (*models.MealLog, error) {
	var food models.FoodItem
	if err := s.db.
		Where("id = ? AND deleted = ?", foodID, false).
		First(&food).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}

	totalCalories := food.Calories * quantity

	log := models.MealLog{
		UserID:        userID,
		FoodID:        food.ID,
		MealType:      mealType,
		Date:          time.Now(),
		Quantity:      quantity,
		TotalCalories: totalCalories,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	if err := s.progress.AddConsumed(userID, log.Date, totalCalories); err != nil {
		return nil, err
	}

	log.Food = food
	return &log, nil
}

func (s *MealService) ListMeals(userID uint, date time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.
		Preload("Food").
		Where("user_id = ? AND date >= ? AND date < ? AND deleted = ?",
			userID, DayStart(date), DayStart(date).AddDate(0, 0, 1), false).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteMealLog soft-deletes the entry and compensates the day's aggregate by
// the frozen total. Deleting an already-deleted or foreign log is NotFound.
func (s *MealService) DeleteMealLog(userID, logID uint) error {
	var log models.MealLog
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

	return s.progress.RemoveConsumed(userID, log.Date, log.TotalCalories)
}

// Summary recomputes the day's totals straight from the ledger. Calories come
// from the frozen per-log snapshot; macro grams come from the catalog rows.
func (s *MealService) Summary(userID uint, date time.Time) (*DailySummary, error) {
	logs, err := s.ListMeals(userID, date)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{}
	for _, l := range logs {
		out.TotalCalories += l.TotalCalories
		out.TotalCarbs += l.Food.Carbs * l.Quantity
		out.TotalProtein += l.Food.Protein * l.Quantity
		out.TotalFat += l.Food.Fat * l.Quantity
	}

	var prefs models.UserPreferences
	err = s.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return out, nil // remaining stays null without preferences
		}
		return nil, err
	}

	remaining := prefs.DailyCalorieGoal - out.TotalCalories
	out.RemainingCalories = &remaining
	return out, nil
}

// ConsumedOn sums the frozen calories of the day's non-deleted meal logs.
func (s *MealService) ConsumedOn(userID uint, date time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.MealLog{}).
		Where("user_id = ? AND date >= ? AND date < ? AND deleted = ?",
			userID, DayStart(date), DayStart(date).AddDate(0, 0, 1), false).
		Select("COALESCE(SUM(total_calories), 0)").
		Scan(&total).Error
	return total, err
}
