// internal/handlers/metrics_handler.go
package handlers

import (
	"net/http"

	"influencer-dashboard/internal/analytics"

	"github.com/gin-gonic/gin"
)

// GetMetricsHandler возвращает агрегированные KPI кампании для выборки.
// Пустая выборка — валидное состояние: все суммы нулевые, ROI равен null.
func GetMetricsHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"metrics":   metrics,
	})
}

// GetInfluencerMetricsHandler возвращает разбивку метрик по инфлюенсерам
// внутри выборки, упорядоченную по идентификатору.
func GetInfluencerMetricsHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)

	c.JSON(http.StatusOK, gin.H{
		"selection":   sel,
		"influencers": metrics.Influencers,
	})
}

type customMetricInput struct {
	Formula string `json:"formula" binding:"required"`
}

// EvaluateCustomMetricHandler вычисляет пользовательскую формулу над
// агрегированными метриками выборки, например
// "incremental_revenue / total_payout * 100".
func EvaluateCustomMetricHandler(c *gin.Context) {
	var input customMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Поле formula обязательно"})
		return
	}

	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)

	value, err := analytics.EvaluateFormula(metrics, input.Formula)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"formula": input.Formula,
		"value":   value,
	})
}
