// internal/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowDashboardPage рендерит главную страницу дашборда.
// Данные для графиков страница запрашивает сама через JSON API.
func ShowDashboardPage(c *gin.Context) {
	login, _ := c.Get("login")
	minDate, maxDate := snap.DateBounds()

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":       gin.H{"Login": login},
		"Categories": snap.Categories(),
		"Platforms":  snap.Platforms(),
		"MinDate":    minDate.Format("2006-01-02"),
		"MaxDate":    maxDate.Format("2006-01-02"),
	})
}
