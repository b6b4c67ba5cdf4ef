// internal/routes/auth_routes.go
package routes

import (
	"influencer-dashboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты для аутентификации.
func RegisterAuthRoutes(r *gin.Engine) {
	// Главная страница для неавторизованных пользователей — форма входа.
	r.GET("/", handlers.ShowLoginPage)

	// Обработка данных с формы входа.
	r.POST("/login", handlers.LoginHandler)

	// Выход пользователя из системы.
	r.GET("/logout", handlers.LogoutHandler)
}
