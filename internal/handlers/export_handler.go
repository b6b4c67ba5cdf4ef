// internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"influencer-dashboard/internal/analytics"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportXLSXHandler выгружает отфильтрованные трекинговые записи и сводные
// KPI в Excel-файл: лист с заказами и лист с метриками.
func ExportXLSXHandler(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := analytics.FilterTracking(snap, sel)
	metrics := analytics.ComputeMetrics(snap, sel, filtered)

	f := excelize.NewFile()
	sheetName := "Tracking"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Influencer", "Category", "Platform", "Date", "Revenue"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, t := range filtered {
		inf, _ := snap.Influencer(*t.InfluencerID)
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.OrderID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), inf.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), inf.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), inf.Platform)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.Revenue.InexactFloat64())
	}

	kpiSheet := "KPIs"
	f.NewSheet(kpiSheet)
	kpis := [][]interface{}{
		{"Metric", "Value"},
		{"Orders", metrics.Orders},
		{"Total Revenue", metrics.TotalRevenue.InexactFloat64()},
		{"Total Payout", metrics.TotalPayout.InexactFloat64()},
		{"Organic Baseline Revenue", metrics.OrganicBaseline.InexactFloat64()},
		{"Incremental Revenue", metrics.IncrementalRevenue.InexactFloat64()},
		{"ROI", metrics.ROI.Format(3)},
		{"Incremental ROAS", metrics.IncrementalROAS.Format(3)},
	}
	for r, kpi := range kpis {
		for col, value := range kpi {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+1)
			f.SetCellValue(kpiSheet, cell, value)
		}
	}

	fileName := fmt.Sprintf("campaign_export_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
