// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /analytics/progress?start_date=...&end_date=...
func (h *AnalyticsController) GetProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	startStr := c.DefaultQuery("start_date", now.AddDate(0, 0, -30).Format("2006-01-02"))
	endStr := c.DefaultQuery("end_date", now.Format("2006-01-02"))

	start, err := time.ParseInLocation("2006-01-02", startStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`end_date` must be on/after `start_date`"})
		return
	}

	rows, err := h.Svc.ProgressSeries(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /analytics/charts?metric=weight|calories&period=week|month
func (h *AnalyticsController) GetCharts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	metric := c.Query("metric")
	period := c.Query("period")

	series, err := h.Svc.ChartSeries(userID, metric, period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
