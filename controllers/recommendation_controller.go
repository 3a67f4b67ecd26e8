package controllers

import (
	"errors"
	"net/http"

	"github.com/Abhivera/dietly-prototype-backend/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Svc *services.RecommendationService
}

func NewRecommendationController(svc *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Svc: svc}
}

// GET /recommendations/meals
func (h *RecommendationController) GetMealRecommendations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recs, err := h.Svc.RecommendMeals(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /recommendations/exercises
func (h *RecommendationController) GetExerciseRecommendations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recs, err := h.Svc.RecommendExercises(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
