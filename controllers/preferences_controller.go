package controllers

import (
	"errors"
	"net/http"

	"github.com/Abhivera/dietly-prototype-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PreferencesController struct {
	Svc *services.PreferencesService
}

func NewPreferencesController(svc *services.PreferencesService) *PreferencesController {
	return &PreferencesController{Svc: svc}
}

func (h *PreferencesController) GetPreferences(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	prefs, err := h.Svc.GetPreferences(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preferences not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferencesController) UpdatePreferences(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.Svc.UpsertPreferences(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
