// internal/handlers/report_handler.go
package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"influencer-dashboard/config"
	"influencer-dashboard/internal/analytics"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

// buildReport прогоняет весь конвейер (фильтр → агрегат → лидерборд →
// отчет) для выборки и возвращает готовый текст.
func buildReport(sel analytics.Selection) string {
	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)
	top := analytics.TopN(analytics.Rank(metrics.Influencers, analytics.Descending), config.App.TopN)
	bottom := analytics.TopN(analytics.Rank(metrics.Influencers, analytics.Ascending), config.App.TopN)
	return analytics.RenderReport(metrics, top, bottom, sel)
}

// reportCacheKey строит ключ кэша по каноническому отпечатку выборки.
// Конвейер идемпотентен, поэтому кэш никогда не отдает устаревший текст.
func reportCacheKey(sel analytics.Selection) string {
	sum := sha256.Sum256([]byte(snap.LoadID + "|" + sel.Fingerprint()))
	return "report:" + hex.EncodeToString(sum[:])
}

// GetReportHandler возвращает текстовый отчет по кампании. Готовый текст
// кэшируется в Redis по отпечатку выборки; при ai=true к отчету добавляется
// резюме от Gemini (если клиент сконфигурирован).
func GetReportHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report string
	cacheKey := reportCacheKey(sel)
	if config.RDB != nil {
		if cached, err := config.RDB.Get(config.Ctx, cacheKey).Result(); err == nil {
			slog.Info("Отчет загружен из кэша", "key", cacheKey)
			report = cached
		}
	}

	if report == "" {
		report = buildReport(sel)
		if config.RDB != nil {
			if err := config.RDB.Set(config.Ctx, cacheKey, report, config.App.ReportCacheTTL).Err(); err != nil {
				slog.Error("Не удалось записать отчет в кэш", "error", err)
			}
		}
	}

	if c.Query("ai") == "true" {
		summary, err := generateAISummary(report)
		if err != nil {
			slog.Warn("ИИ-резюме недоступно", "error", err)
		} else {
			report += "\n#### AI Summary\n" + summary + "\n"
		}
	}

	c.String(http.StatusOK, report)
}

// DownloadReportHandler отдает отчет файлом для скачивания.
func DownloadReportHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := buildReport(sel)
	fileName := fmt.Sprintf("campaign_report_%s.txt", uuid.NewString())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// generateAISummary просит Gemini написать короткое резюме по готовому
// отчету. Детерминированный отчет остается источником истины: резюме —
// необязательное дополнение и в кэш не попадает.
func generateAISummary(report string) (string, error) {
	if config.GeminiClient == nil {
		return "", fmt.Errorf("gemini client is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := "Summarize the following influencer campaign report in 3-4 sentences for a marketing manager. " +
		"Be specific about ROI and the best and worst performers.\n\n" + report

	resp, err := config.GeminiClient.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	summary := strings.TrimSpace(b.String())
	if summary == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return summary, nil
}
