// internal/handlers/charts_handler.go
package handlers

import (
	"net/http"
	"time"

	"influencer-dashboard/internal/analytics"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetTimeSeriesHandler возвращает ежедневный ряд выручки: от инфлюенсеров
// из выборки и органической в том же диапазоне дат.
func GetTimeSeriesHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"series":    analytics.DailyRevenue(snap, sel, filtered),
	})
}

// GetPlatformChartHandler возвращает агрегаты выборки по площадкам.
func GetPlatformChartHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"platforms": analytics.GroupByPlatform(snap, filtered),
	})
}

// GetCategoryChartHandler возвращает агрегаты выборки по нишам.
func GetCategoryChartHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	c.JSON(http.StatusOK, gin.H{
		"selection":  sel,
		"categories": analytics.GroupByCategory(snap, filtered),
	})
}

type postRow struct {
	Influencer string `json:"influencer"`
	Platform   string `json:"platform"`
	Date       string `json:"date"`
	Reach      int64  `json:"reach"`
	Likes      int64  `json:"likes"`
	Comments   int64  `json:"comments"`
	Engagement int64  `json:"engagement"`
}

// GetPostsHandler возвращает таблицу публикаций с именами инфлюенсеров.
// Фильтры по нише, площадке и датам применяются к публикациям так же,
// как к трекинговым записям.
func GetPostsHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]postRow, 0)
	for _, p := range snap.Posts {
		inf, ok := snap.Influencer(p.InfluencerID)
		if !ok {
			continue
		}
		if !selectionMatchesPost(sel, inf.Category, inf.Platform, p.Date) {
			continue
		}
		rows = append(rows, postRow{
			Influencer: inf.Name,
			Platform:   p.Platform,
			Date:       p.Date.Format("2006-01-02"),
			Reach:      p.Reach,
			Likes:      p.Likes,
			Comments:   p.Comments,
			Engagement: p.Engagement(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"posts":     rows,
	})
}

type trackingRow struct {
	OrderID    string          `json:"orderId"`
	Influencer string          `json:"influencer"`
	Category   string          `json:"category"`
	Platform   string          `json:"platform"`
	Date       string          `json:"date"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// GetTrackingHandler возвращает отфильтрованные трекинговые записи
// в развернутом виде для таблиц и графиков.
func GetTrackingHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	rows := make([]trackingRow, 0, len(filtered))
	for _, t := range filtered {
		inf, _ := snap.Influencer(*t.InfluencerID)
		rows = append(rows, trackingRow{
			OrderID:    t.OrderID,
			Influencer: inf.Name,
			Category:   inf.Category,
			Platform:   inf.Platform,
			Date:       t.Date.Format("2006-01-02"),
			Revenue:    t.Revenue,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"tracking":  rows,
	})
}

func selectionMatchesPost(sel analytics.Selection, category, platform string, date time.Time) bool {
	if !analytics.Matches(sel.Categories, category) || !analytics.Matches(sel.Platforms, platform) {
		return false
	}
	return !date.Before(sel.From) && !date.After(sel.To)
}
