// main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"influencer-dashboard/config"
	"influencer-dashboard/internal/analytics"
	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/internal/handlers"
	"influencer-dashboard/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "influencer-dashboard",
	Short: "Аналитический дашборд маркетинговых кампаний с инфлюенсерами",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер дашборда",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(cfgPath)

		config.ConnectDB()
		snap, err := loadSnapshot(cfg)
		if err != nil {
			return err
		}
		handlers.SetSnapshot(snap)

		config.ConnectRedis()
		if err := config.InitGoogleServices(); err != nil {
			slog.Warn("Клиент Gemini не инициализирован, ИИ-резюме отключено", "reason", err)
		}

		gin.SetMode(cfg.GinMode)
		r := gin.Default()
		r.LoadHTMLGlob("templates/*")
		routes.SetupRoutes(r)

		slog.Info("Дашборд запущен", "port", cfg.HTTPPort)
		return r.Run(fmt.Sprintf(":%d", cfg.HTTPPort))
	},
}

var (
	reportCategories string
	reportPlatforms  string
	reportFrom       string
	reportTo         string
	reportOut        string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Сгенерировать текстовый отчет без запуска сервера",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(cfgPath)

		config.ConnectDB()
		snap, err := loadSnapshot(cfg)
		if err != nil {
			return err
		}

		sel, err := buildSelection(snap)
		if err != nil {
			return err
		}

		filtered := analytics.FilterTracking(snap, sel)
		metrics := analytics.ComputeMetrics(snap, sel, filtered)
		top := analytics.TopN(analytics.Rank(metrics.Influencers, analytics.Descending), cfg.TopN)
		bottom := analytics.TopN(analytics.Rank(metrics.Influencers, analytics.Ascending), cfg.TopN)
		report := analytics.RenderReport(metrics, top, bottom, sel)

		if reportOut == "" {
			fmt.Print(report)
			return nil
		}
		if err := os.WriteFile(reportOut, []byte(report), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		slog.Info("Отчет сохранен", "path", reportOut)
		return nil
	},
}

// loadSnapshot выбирает источник данных: Postgres при заданном DB_URL,
// иначе CSV-файлы из каталога данных.
func loadSnapshot(cfg config.Config) (*dataset.Snapshot, error) {
	if config.DB != nil {
		return dataset.LoadDB(config.DB)
	}
	return dataset.LoadCSV(cfg.DataDir)
}

// buildSelection собирает выборку из флагов команды report.
// Незаданные даты заменяются границами снимка.
func buildSelection(snap *dataset.Snapshot) (analytics.Selection, error) {
	minDate, maxDate := snap.DateBounds()
	sel := analytics.SelectAll(minDate, maxDate)

	if reportCategories != "" {
		sel.Categories = splitList(reportCategories)
	}
	if reportPlatforms != "" {
		sel.Platforms = splitList(reportPlatforms)
	}
	if reportFrom != "" {
		t, err := time.Parse("2006-01-02", reportFrom)
		if err != nil {
			return analytics.Selection{}, fmt.Errorf("bad --from date %q", reportFrom)
		}
		sel.From = t
	}
	if reportTo != "" {
		t, err := time.Parse("2006-01-02", reportTo)
		if err != nil {
			return analytics.Selection{}, fmt.Errorf("bad --to date %q", reportTo)
		}
		sel.To = t
	}
	return sel, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "путь к файлу конфигурации")

	reportCmd.Flags().StringVar(&reportCategories, "categories", "", "ниши через запятую (по умолчанию все)")
	reportCmd.Flags().StringVar(&reportPlatforms, "platforms", "", "площадки через запятую (по умолчанию все)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "начало диапазона дат (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "конец диапазона дат (YYYY-MM-DD)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "файл для сохранения отчета (по умолчанию stdout)")

	rootCmd.AddCommand(serveCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Команда завершилась с ошибкой", "error", err)
		os.Exit(1)
	}
}
