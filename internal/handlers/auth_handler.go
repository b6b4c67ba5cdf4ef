// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"influencer-dashboard/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage рендерит страницу входа.
// Это главная страница для неавторизованных пользователей.
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

type loginInput struct {
	Login    string `form:"login" json:"login" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LoginHandler проверяет учетные данные единственного пользователя дашборда
// и выдает JWT в cookie.
func LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Логин и пароль обязательны"})
		return
	}

	if input.Login != config.App.Login ||
		bcrypt.CompareHashAndPassword([]byte(config.App.PasswordHash), []byte(input.Password)) != nil {
		slog.Warn("Неудачная попытка входа", "login", input.Login)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	claims := jwt.MapClaims{
		"sub": input.Login,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		slog.Error("Не удалось подписать токен", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать токен"})
		return
	}

	c.SetCookie("auth_token", tokenStr, int((24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Вход выполнен", "redirect": "/dashboard"})
}

// LogoutHandler сбрасывает cookie и возвращает на страницу входа.
func LogoutHandler(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
