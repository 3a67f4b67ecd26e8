package services

import (
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"
	"github.com/Abhivera/dietly-prototype-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService emails every user their previous day's totals shortly after
// midnight.
type ReminderService struct {
	db       *gorm.DB
	progress *ProgressService
	logger   *zap.Logger
}

func NewReminderService(db *gorm.DB, progress *ProgressService, logger *zap.Logger) *ReminderService {
	return &ReminderService{db: db, progress: progress, logger: logger}
}

// Start schedules the daily job at 00:45 and returns the running cron so the
// caller owns its lifecycle.
func (s *ReminderService) Start() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("45 0 * * *", s.SendDailyReminders); err != nil {
		s.logger.Error("failed to schedule reminder job", zap.Error(err))
		return c
	}
	c.Start()
	return c
}

func (s *ReminderService) SendDailyReminders() {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		s.logger.Error("reminder job: fetching users failed", zap.Error(err))
		return
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	for _, u := range users {
		var consumed, burned float64
		rows, err := s.progress.Rows(u.ID, yesterday, yesterday)
		if err != nil {
			s.logger.Error("reminder job: fetching progress failed",
				zap.Uint("user_id", u.ID), zap.Error(err))
			continue
		}
		if len(rows) > 0 {
			consumed = rows[0].CaloriesConsumed
			burned = rows[0].CaloriesBurned
		}

		if err := utils.SendDailyReminderEmail(u.Email, consumed, burned); err != nil {
			s.logger.Error("reminder job: email failed",
				zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}
	s.logger.Info("reminder job finished", zap.Int("users", len(users)))
}
