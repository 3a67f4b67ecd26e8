package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

const (
	foodsCacheKey = "foods"
	foodCacheTTL  = time.Hour
)

func foodCacheKey(id uint) string { return fmt.Sprintf("food:%d", id) }

// FoodService serves the read-heavy food catalog through the cache. Every
// mutation invalidates the affected keys synchronously; read paths never
// repopulate the cache with data older than the last invalidation.
type FoodService struct {
	db    *gorm.DB
	cache Cache
}

func NewFoodService(db *gorm.DB, cache Cache) *FoodService {
	return &FoodService{db: db, cache: cache}
}

func (s *FoodService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	if cached, err := s.cache.Get(ctx, foodsCacheKey); err == nil {
		var foods []models.FoodItem
		if err := json.Unmarshal([]byte(cached), &foods); err == nil {
			return foods, nil
		}
	}

	var foods []models.FoodItem
	if err := s.db.Where("deleted = ?", false).Find(&foods).Error; err != nil {
		return nil, err
	}

	if data, err := json.Marshal(foods); err == nil {
		_ = s.cache.Set(ctx, foodsCacheKey, string(data), foodCacheTTL)
	}
	return foods, nil
}

func (s *FoodService) GetFood(ctx context.Context, id uint) (*models.FoodItem, error) {
	key := foodCacheKey(id)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var food models.FoodItem
		if err := json.Unmarshal([]byte(cached), &food); err == nil {
			return &food, nil
		}
	}

	var food models.FoodItem
	if err := s.db.
		Where("id = ? AND deleted = ?", id, false).
		First(&food).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}

	if data, err := json.Marshal(food); err == nil {
		_ = s.cache.Set(ctx, key, string(data), foodCacheTTL)
	}
	return &food, nil
}

func (s *FoodService) CreateFood(ctx context.Context, food *models.FoodItem) error {
	if err := s.db.Create(food).Error; err != nil {
		return err
	}
	return s.cache.Del(ctx, foodsCacheKey)
}

// UpdateFood edits the catalog row. Calories already frozen into past meal
// logs and their day aggregates are unaffected.
func (s *FoodService) UpdateFood(ctx context.Context, id uint, fields map[string]interface{}) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.
		Where("id = ? AND deleted = ?", id, false).
		First(&food).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&food).Updates(fields).Error; err != nil {
		return nil, err
	}

	if err := s.cache.Del(ctx, foodsCacheKey, foodCacheKey(id)); err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, id uint) error {
	var food models.FoodItem
	if err := s.db.
		Where("id = ? AND deleted = ?", id, false).
		First(&food).Error; err != nil {
		return err
	}

	now := time.Now()
	if err := s.db.Model(&food).
		Updates(map[string]interface{}{"deleted": true, "deleted_at": now}).Error; err != nil {
		return err
	}

	return s.cache.Del(ctx, foodsCacheKey, foodCacheKey(id))
}
