// internal/routes/dashboard_routes.go
package routes

import (
	"influencer-dashboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes регистрирует маршруты главной панели управления.
func RegisterDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", handlers.ShowDashboardPage)
}
