// internal/routes/router.go
package routes

import (
	"influencer-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// --- Публичные маршруты ---
	// Страница входа и обработчики формы не требуют аутентификации.
	RegisterAuthRoutes(r)

	// --- Защищенная группа маршрутов ---
	// Все маршруты в этой группе требуют валидный JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterDashboardRoutes(authRequired) // Главная страница дашборда
		RegisterAPIRoutes(authRequired)       // Все API-маршруты
	}
}
