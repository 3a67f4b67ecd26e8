package services

import (
	"fmt"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"
	"github.com/Abhivera/dietly-prototype-backend/utils"

	"gorm.io/gorm"
)

type ProfileService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewProfileService(db *gorm.DB, progress *ProgressService) *ProfileService {
	return &ProfileService{db: db, progress: progress}
}

type ProfileInput struct {
	Name           string            `json:"name"`
	Age            int               `json:"age"`
	Weight         float64           `json:"weight"`
	Height         float64           `json:"height"`
	Gender         string            `json:"gender"`
	Goal           string            `json:"goal"`
	ActivityLevel  string            `json:"activity_level"`
	ProfilePicture string            `json:"profile_picture"` // base64 data URI
	Preferences    *PreferencesInput `json:"preferences"`
}

func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &profile, nil
}

// UpsertProfile creates or updates the one-to-one profile row. A weight change
// also records today's weigh-in on the aggregate so the weight chart has data.
func (s *ProfileService) UpsertProfile(userID uint, input ProfileInput) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:        userID,
		Name:          input.Name,
		Age:           input.Age,
		Weight:        input.Weight,
		Height:        input.Height,
		Gender:        input.Gender,
		Goal:          input.Goal,
		ActivityLevel: input.ActivityLevel,
	}

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		profile.ProfilePicture = url
	}

	if err := s.db.
		Where("user_id = ?", userID).
		Assign(profile).
		FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}

	if input.Weight > 0 {
		if err := s.progress.SetWeight(userID, time.Now(), input.Weight); err != nil {
			return nil, err
		}
	}

	return &profile, nil
}
