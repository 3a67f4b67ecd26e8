package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserPreferences{},
		&models.FoodItem{},
		&models.Exercise{},
		&models.MealLog{},
		&models.ExerciseLog{},
		&models.ProgressLog{},
	))
	return db
}

// fakeCache is an in-memory Cache for tests. TTLs are recorded but not
// enforced.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string

	sets int
	dels int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.dels++
	return nil
}

func aggregateFor(t *testing.T, db *gorm.DB, userID uint, day time.Time) models.ProgressLog {
	t.Helper()
	var row models.ProgressLog
	err := db.Where("user_id = ? AND date = ?", userID, DayStart(day)).First(&row).Error
	require.NoError(t, err)
	return row
}
