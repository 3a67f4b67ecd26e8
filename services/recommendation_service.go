package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"
	"github.com/Abhivera/dietly-prototype-backend/utils"

	"gorm.io/gorm"
)

// ErrProfileIncomplete is returned when recommendations are requested before
// the user has set up a profile and preferences.
var ErrProfileIncomplete = errors.New("user profile or preferences not found")

type RecommendationService struct {
	db       *gorm.DB
	meals    *MealService
	exercise *ExerciseService
}

func NewRecommendationService(db *gorm.DB, meals *MealService, exercise *ExerciseService) *RecommendationService {
	return &RecommendationService{db: db, meals: meals, exercise: exercise}
}

type ExerciseRecommendation struct {
	models.Exercise
	RecommendedDuration   int    `json:"recommended_duration"`
	EstimatedCaloriesBurn int    `json:"estimated_calories_burn"`
	Intensity             string `json:"intensity"`
}

// RecommendMeals returns the 5 largest catalog foods that still fit the
// remaining calorie budget, skipping restricted categories.
func (s *RecommendationService) RecommendMeals(userID uint) ([]models.FoodItem, error) {
	prefs, err := s.preferences(userID)
	if err != nil {
		return nil, err
	}

	consumed, err := s.meals.ConsumedOn(userID, time.Now())
	if err != nil {
		return nil, err
	}
	remaining := prefs.DailyCalorieGoal - consumed

	q := s.db.
		Where("deleted = ? AND calories <= ?", false, remaining)
	if restricted := splitRestrictions(prefs.DietaryRestrictions); len(restricted) > 0 {
		q = q.Where("category NOT IN ?", restricted)
	}

	var foods []models.FoodItem
	err = q.Order("calories DESC").Limit(5).Find(&foods).Error
	return foods, err
}

// RecommendExercises sizes each candidate against the calories left to burn
// toward the user's TDEE today.
func (s *RecommendationService) RecommendExercises(userID uint) ([]ExerciseRecommendation, error) {
	profile, err := s.profile(userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.preferences(userID); err != nil {
		return nil, err
	}

	bmr := utils.CalculateBMR(profile.Weight, profile.Height, profile.Age, profile.Gender)
	tdee, err := utils.CalculateTDEE(bmr, profile.ActivityLevel)
	if err != nil {
		return nil, err
	}

	burned, err := s.exercise.BurnedOn(userID, time.Now())
	if err != nil {
		return nil, err
	}
	remainingToBurn := math.Max(0, tdee-burned)

	order := "calories_burned_per_minute DESC"
	if profile.ActivityLevel == "beginner" {
		order = "calories_burned_per_minute ASC"
	}

	var exercises []models.Exercise
	if err := s.db.
		Where("deleted = ?", false).
		Order(order).
		Limit(5).
		Find(&exercises).Error; err != nil {
		return nil, err
	}

	recs := make([]ExerciseRecommendation, 0, len(exercises))
	for _, ex := range exercises {
		var duration int
		if ex.CaloriesBurnedPerMinute > 0 {
			duration = int(math.Round(remainingToBurn / ex.CaloriesBurnedPerMinute))
		}
		recs = append(recs, ExerciseRecommendation{
			Exercise:              ex,
			RecommendedDuration:   duration,
			EstimatedCaloriesBurn: int(math.Round(ex.CaloriesBurnedPerMinute * float64(duration))),
			Intensity:             utils.ExerciseIntensity(ex.CaloriesBurnedPerMinute),
		})
	}

	if profile.ActivityLevel == "beginner" {
		sort.SliceStable(recs, func(i, j int) bool {
			return utils.IntensityRank(recs[i].Intensity) < utils.IntensityRank(recs[j].Intensity)
		})
	} else {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].EstimatedCaloriesBurn > recs[j].EstimatedCaloriesBurn
		})
	}

	return recs, nil
}

func (s *RecommendationService) profile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	return &profile, nil
}

func (s *RecommendationService) preferences(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	return &prefs, nil
}

func splitRestrictions(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
