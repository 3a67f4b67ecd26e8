package services

import (
	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

type PreferencesService struct {
	db *gorm.DB
}

func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

type PreferencesInput struct {
	DietaryRestrictions string  `json:"dietary_restrictions"`
	DailyCalorieGoal    float64 `json:"daily_calorie_goal"`
	WaterIntakeGoal     float64 `json:"water_intake_goal"`
}

func (s *PreferencesService) GetPreferences(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &prefs, nil
}

// UpsertPreferences never duplicates the one-to-one row.
func (s *PreferencesService) UpsertPreferences(userID uint, input PreferencesInput) (*models.UserPreferences, error) {
	prefs := models.UserPreferences{
		UserID:              userID,
		DietaryRestrictions: input.DietaryRestrictions,
		DailyCalorieGoal:    input.DailyCalorieGoal,
		WaterIntakeGoal:     input.WaterIntakeGoal,
	}

	if err := s.db.
		Where("user_id = ?", userID).
		Assign(prefs).
		FirstOrCreate(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}
