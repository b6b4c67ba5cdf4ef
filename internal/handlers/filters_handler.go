// internal/handlers/filters_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFilterOptionsHandler возвращает доступные значения фильтров:
// список ниш, список площадок и границы дат по снимку данных.
// Фронтенд заполняет ими селекторы на странице дашборда.
func GetFilterOptionsHandler(c *gin.Context) {
	minDate, maxDate := snap.DateBounds()

	c.JSON(http.StatusOK, gin.H{
		"categories": snap.Categories(),
		"platforms":  snap.Platforms(),
		"minDate":    minDate.Format("2006-01-02"),
		"maxDate":    maxDate.Format("2006-01-02"),
		"loadId":     snap.LoadID,
		"skipped":    snap.Skipped,
	})
}
