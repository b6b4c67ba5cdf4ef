// internal/routes/api_routes.go
package routes

import (
	"influencer-dashboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- ФИЛЬТРЫ ---
		filters := apiGroup.Group("/filters")
		{
			filters.GET("/options", handlers.GetFilterOptionsHandler)
		}

		// --- МЕТРИКИ ---
		metrics := apiGroup.Group("/metrics")
		{
			metrics.GET("", handlers.GetMetricsHandler)
			metrics.GET("/influencers", handlers.GetInfluencerMetricsHandler)
			metrics.POST("/custom", handlers.EvaluateCustomMetricHandler)
		}

		// --- ЛИДЕРБОРД ---
		apiGroup.GET("/leaderboard", handlers.GetLeaderboardHandler)

		// --- ДАННЫЕ ДЛЯ ГРАФИКОВ ---
		charts := apiGroup.Group("/charts")
		{
			charts.GET("/timeseries", handlers.GetTimeSeriesHandler)
			charts.GET("/platforms", handlers.GetPlatformChartHandler)
			charts.GET("/categories", handlers.GetCategoryChartHandler)
		}

		// --- ТАБЛИЦЫ ---
		apiGroup.GET("/posts", handlers.GetPostsHandler)
		apiGroup.GET("/tracking", handlers.GetTrackingHandler)

		// --- ОТЧЕТ ---
		report := apiGroup.Group("/report")
		{
			report.GET("", handlers.GetReportHandler)
			report.GET("/download", handlers.DownloadReportHandler)
		}

		// --- ЭКСПОРТ ---
		apiGroup.GET("/export/xlsx", handlers.ExportXLSXHandler)
	}
}
