package services

import (
	"testing"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddConsumedCreatesRowLazily(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)
	day := time.Now()

	require.NoError(t, svc.AddConsumed(1, day, 250))

	row := aggregateFor(t, db, 1, day)
	assert.Equal(t, 250.0, row.CaloriesConsumed)
	assert.Equal(t, 0.0, row.CaloriesBurned)
	assert.Equal(t, 0.0, row.Weight)
}

func TestIncrementsAccumulateOnOneRow(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)
	day := time.Now()

	require.NoError(t, svc.AddConsumed(1, day, 100))
	require.NoError(t, svc.AddConsumed(1, day, 150))
	require.NoError(t, svc.AddBurned(1, day, 80))

	var count int64
	require.NoError(t, db.Model(&models.ProgressLog{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	row := aggregateFor(t, db, 1, day)
	assert.Equal(t, 250.0, row.CaloriesConsumed)
	assert.Equal(t, 80.0, row.CaloriesBurned)
}

func TestDaysAndUsersAreIndependent(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, svc.AddBurned(1, yesterday, 300))
	require.NoError(t, svc.AddBurned(1, today, 100))
	require.NoError(t, svc.AddBurned(2, today, 50))

	assert.Equal(t, 300.0, aggregateFor(t, db, 1, yesterday).CaloriesBurned)
	assert.Equal(t, 100.0, aggregateFor(t, db, 1, today).CaloriesBurned)
	assert.Equal(t, 50.0, aggregateFor(t, db, 2, today).CaloriesBurned)
}

func TestRemoveOnMissingRowIsNoOp(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)

	require.NoError(t, svc.RemoveConsumed(9, time.Now(), 500))
	require.NoError(t, svc.RemoveBurned(9, time.Now(), 500))

	var count int64
	require.NoError(t, db.Model(&models.ProgressLog{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSetWeightUpserts(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)
	day := time.Now()

	require.NoError(t, svc.SetWeight(1, day, 82.5))
	assert.Equal(t, 82.5, aggregateFor(t, db, 1, day).Weight)

	require.NoError(t, svc.AddConsumed(1, day, 400))
	require.NoError(t, svc.SetWeight(1, day, 82.0))

	row := aggregateFor(t, db, 1, day)
	assert.Equal(t, 82.0, row.Weight)
	assert.Equal(t, 400.0, row.CaloriesConsumed)
}

func TestRowsRangeAndOrder(t *testing.T) {
	db := setupDB(t)
	svc := NewProgressService(db)
	now := time.Now()

	for _, offset := range []int{-4, -2, 0} {
		require.NoError(t, svc.AddConsumed(1, now.AddDate(0, 0, offset), 100))
	}

	rows, err := svc.Rows(1, now.AddDate(0, 0, -3), now)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Date.Before(rows[1].Date))
}
