package services

import (
	"context"
	"testing"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFoodFixtures(t *testing.T) (*gorm.DB, *FoodService, *fakeCache) {
	t.Helper()
	db := setupDB(t)
	cache := newFakeCache()
	return db, NewFoodService(db, cache), cache
}

func TestListFoodsPopulatesCache(t *testing.T) {
	db, svc, cache := newFoodFixtures(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.FoodItem{Name: "Oats", Calories: 380}).Error)

	foods, err := svc.ListFoods(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, 1, cache.sets)

	// second read is served from the cache even after a raw DB write
	require.NoError(t, db.Create(&models.FoodItem{Name: "Stealth", Calories: 1}).Error)
	foods, err = svc.ListFoods(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestCreateFoodInvalidatesListCache(t *testing.T) {
	_, svc, cache := newFoodFixtures(t)
	ctx := context.Background()

	_, err := svc.ListFoods(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CreateFood(ctx, &models.FoodItem{Name: "Banana", Calories: 105}))
	assert.Equal(t, 1, cache.dels)

	foods, err := svc.ListFoods(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestGetFoodCachesById(t *testing.T) {
	db, svc, cache := newFoodFixtures(t)
	ctx := context.Background()

	food := models.FoodItem{Name: "Apple", Calories: 95}
	require.NoError(t, db.Create(&food).Error)

	got, err := svc.GetFood(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, 1, cache.sets)

	_, ok := cache.data[foodCacheKey(food.ID)]
	assert.True(t, ok)

	_, err = svc.GetFood(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateFoodInvalidatesBothKeys(t *testing.T) {
	db, svc, cache := newFoodFixtures(t)
	ctx := context.Background()

	food := models.FoodItem{Name: "Apple", Calories: 95}
	require.NoError(t, db.Create(&food).Error)

	_, err := svc.ListFoods(ctx)
	require.NoError(t, err)
	_, err = svc.GetFood(ctx, food.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateFood(ctx, food.ID, map[string]interface{}{"calories": 100.0})
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.Calories)

	assert.NotContains(t, cache.data, foodsCacheKey)
	assert.NotContains(t, cache.data, foodCacheKey(food.ID))
}

func TestDeleteFoodHidesItem(t *testing.T) {
	db, svc, _ := newFoodFixtures(t)
	ctx := context.Background()

	food := models.FoodItem{Name: "Apple", Calories: 95}
	require.NoError(t, db.Create(&food).Error)

	require.NoError(t, svc.DeleteFood(ctx, food.ID))

	_, err := svc.GetFood(ctx, food.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	foods, err := svc.ListFoods(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 0)

	// deleting again is NotFound
	err = svc.DeleteFood(ctx, food.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
