// internal/handlers/leaderboard_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"influencer-dashboard/config"
	"influencer-dashboard/internal/analytics"

	"github.com/gin-gonic/gin"
)

// GetLeaderboardHandler возвращает лидерборд инфлюенсеров по ROI.
// Параметр order=desc|asc задает направление (по умолчанию лучшие первыми),
// limit ограничивает длину списка.
func GetLeaderboardHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := analytics.Order(c.DefaultQuery("order", string(analytics.Descending)))
	if order != analytics.Descending && order != analytics.Ascending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be 'desc' or 'asc'"})
		return
	}

	limit := config.App.TopN
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad limit"})
			return
		}
		limit = n
	}

	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)
	ranked := analytics.Rank(metrics.Influencers, order)

	c.JSON(http.StatusOK, gin.H{
		"selection":   sel,
		"order":       order,
		"leaderboard": analytics.TopN(ranked, limit),
	})
}
