package services

import (
	"testing"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExerciseFixtures(t *testing.T) (*gorm.DB, *ExerciseService, *models.Exercise) {
	t.Helper()
	db := setupDB(t)
	svc := NewExerciseService(db, NewProgressService(db))

	running := &models.Exercise{Name: "Running", CaloriesBurnedPerMinute: 10}
	require.NoError(t, db.Create(running).Error)
	return db, svc, running
}

func TestLogExerciseKeysAggregateOffStatedDate(t *testing.T) {
	db, svc, running := newExerciseFixtures(t)
	backdated := time.Now().AddDate(0, 0, -3)

	log, err := svc.LogExercise(1, running.ID, 30, backdated)
	require.NoError(t, err)
	assert.Equal(t, 300.0, log.CaloriesBurned)

	// the stated day got the burn, today did not
	assert.Equal(t, 300.0, aggregateFor(t, db, 1, backdated).CaloriesBurned)
	var count int64
	require.NoError(t, db.Model(&models.ProgressLog{}).
		Where("user_id = ? AND date = ?", 1, DayStart(time.Now())).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogExerciseUnknownExercise(t *testing.T) {
	_, svc, _ := newExerciseFixtures(t)

	_, err := svc.LogExercise(1, 999, 30, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteExerciseLogCompensatesStatedDate(t *testing.T) {
	db, svc, running := newExerciseFixtures(t)
	backdated := time.Now().AddDate(0, 0, -2)

	log, err := svc.LogExercise(1, running.ID, 45, backdated)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLog(1, log.ID))

	assert.Equal(t, 0.0, aggregateFor(t, db, 1, backdated).CaloriesBurned)

	err = svc.DeleteLog(1, log.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSoftDeletedExerciseHiddenFromCatalog(t *testing.T) {
	_, svc, running := newExerciseFixtures(t)

	_, err := svc.CreateExercise("Cycling", 7)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteExercise(running.ID))

	exercises, err := svc.ListExercises()
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Cycling", exercises[0].Name)

	// logging against the soft-deleted exercise is NotFound
	_, err = svc.LogExercise(1, running.ID, 10, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBurnedOnSumsNonDeletedLogs(t *testing.T) {
	_, svc, running := newExerciseFixtures(t)
	now := time.Now()

	_, err := svc.LogExercise(1, running.ID, 10, now)
	require.NoError(t, err)
	gone, err := svc.LogExercise(1, running.ID, 20, now)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLog(1, gone.ID))

	burned, err := svc.BurnedOn(1, now)
	require.NoError(t, err)
	assert.Equal(t, 100.0, burned)
}
