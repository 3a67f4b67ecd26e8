package services

import (
	"testing"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMealFixtures(t *testing.T) (*gorm.DB, *MealService, *models.FoodItem) {
	t.Helper()
	db := setupDB(t)
	svc := NewMealService(db, NewProgressService(db))

	food := &models.FoodItem{Name: "Chicken Breast", Category: "meat", Calories: 200, Carbs: 0, Protein: 38, Fat: 4}
	require.NoError(t, db.Create(food).Error)
	return db, svc, food
}

func TestLogMealFreezesCaloriesAndBumpsAggregate(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	log, err := svc.LogMeal(1, food.ID, "Lunch", 2)
	require.NoError(t, err)
	assert.Equal(t, 400.0, log.TotalCalories)

	row := aggregateFor(t, db, 1, time.Now())
	assert.Equal(t, 400.0, row.CaloriesConsumed)
}

func TestLogMealUnknownOrDeletedFood(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	_, err := svc.LogMeal(1, 999, "Lunch", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	now := time.Now()
	require.NoError(t, db.Model(food).
		Updates(map[string]interface{}{"deleted": true, "deleted_at": now}).Error)

	_, err = svc.LogMeal(1, food.ID, "Lunch", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMealLogCompensatesAggregate(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	log, err := svc.LogMeal(1, food.ID, "Lunch", 2)
	require.NoError(t, err)
	assert.Equal(t, 400.0, aggregateFor(t, db, 1, time.Now()).CaloriesConsumed)

	require.NoError(t, svc.DeleteMealLog(1, log.ID))
	assert.Equal(t, 0.0, aggregateFor(t, db, 1, time.Now()).CaloriesConsumed)

	var stored models.MealLog
	require.NoError(t, db.First(&stored, log.ID).Error)
	assert.True(t, stored.Deleted)
	require.NotNil(t, stored.DeletedAt)
}

func TestDeleteMealLogIsNotIdempotent(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	log, err := svc.LogMeal(1, food.ID, "Dinner", 1)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMealLog(1, log.ID))

	// second delete fails and leaves the aggregate untouched
	err = svc.DeleteMealLog(1, log.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 0.0, aggregateFor(t, db, 1, time.Now()).CaloriesConsumed)
}

func TestDeleteMealLogOwnership(t *testing.T) {
	_, svc, food := newMealFixtures(t)

	log, err := svc.LogMeal(1, food.ID, "Snack", 1)
	require.NoError(t, err)

	err = svc.DeleteMealLog(2, log.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogEditDoesNotRewriteHistory(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	log, err := svc.LogMeal(1, food.ID, "Lunch", 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.FoodItem{}).
		Where("id = ?", food.ID).
		UpdateColumn("calories", 999).Error)

	var stored models.MealLog
	require.NoError(t, db.First(&stored, log.ID).Error)
	assert.Equal(t, 400.0, stored.TotalCalories)
	assert.Equal(t, 400.0, aggregateFor(t, db, 1, time.Now()).CaloriesConsumed)
}

func TestSummaryMatchesAggregate(t *testing.T) {
	db, svc, food := newMealFixtures(t)

	rice := &models.FoodItem{Name: "Rice", Category: "grain", Calories: 130, Carbs: 28, Protein: 2.7, Fat: 0.3}
	require.NoError(t, db.Create(rice).Error)

	_, err := svc.LogMeal(1, food.ID, "Lunch", 2)
	require.NoError(t, err)
	logged, err := svc.LogMeal(1, rice.ID, "Lunch", 1.5)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMealLog(1, logged.ID))

	summary, err := svc.Summary(1, time.Now())
	require.NoError(t, err)

	// the display recomputation and the incrementally maintained
	// aggregate must agree
	assert.Equal(t, aggregateFor(t, db, 1, time.Now()).CaloriesConsumed, summary.TotalCalories)
	assert.Equal(t, 400.0, summary.TotalCalories)
	assert.Equal(t, 76.0, summary.TotalProtein)
	assert.Nil(t, summary.RemainingCalories)
}

func TestSummaryRemainingCalories(t *testing.T) {
	db, svc, food := newMealFixtures(t)
	require.NoError(t, db.Create(&models.UserPreferences{UserID: 1, DailyCalorieGoal: 2000}).Error)

	_, err := svc.LogMeal(1, food.ID, "Lunch", 2)
	require.NoError(t, err)

	summary, err := svc.Summary(1, time.Now())
	require.NoError(t, err)
	require.NotNil(t, summary.RemainingCalories)
	assert.Equal(t, 1600.0, *summary.RemainingCalories)
}

func TestListMealsSkipsDeleted(t *testing.T) {
	_, svc, food := newMealFixtures(t)

	kept, err := svc.LogMeal(1, food.ID, "Breakfast", 1)
	require.NoError(t, err)
	gone, err := svc.LogMeal(1, food.ID, "Lunch", 1)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMealLog(1, gone.ID))

	logs, err := svc.ListMeals(1, time.Now())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, kept.ID, logs[0].ID)
	assert.Equal(t, food.Name, logs[0].Food.Name)
}
