package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExerciseController struct {
	Svc *services.ExerciseService
}

func NewExerciseController(svc *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Svc: svc}
}

// GET /exercises
func (h *ExerciseController) ListExercises(c *gin.Context) {
	exercises, err := h.Svc.ListExercises()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// POST /exercises
func (h *ExerciseController) CreateExercise(c *gin.Context) {
	var input struct {
		Name                    string  `json:"name" binding:"required"`
		CaloriesBurnedPerMinute float64 `json:"calories_burned_per_minute" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := h.Svc.CreateExercise(input.Name, input.CaloriesBurnedPerMinute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// DELETE /exercises/:id
func (h *ExerciseController) DeleteExercise(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise id"})
		return
	}

	if err := h.Svc.DeleteExercise(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted successfully"})
}

type LogExerciseInput struct {
	ExerciseID uint    `json:"exercise_id" binding:"required"`
	Duration   float64 `json:"duration" binding:"required,gt=0"`
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// POST /exercises/log
func (h *ExerciseController) LogExercise(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input LogExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
	}

	log, err := h.Svc.LogExercise(userID, input.ExerciseID, input.Duration, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GET /exercises/log?date=YYYY-MM-DD
func (h *ExerciseController) GetExerciseLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	logs, err := h.Svc.ListLogs(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DELETE /exercises/log/:id
func (h *ExerciseController) DeleteExerciseLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := h.Svc.DeleteLog(userID, uint(logID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exercise log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise log deleted successfully"})
}
