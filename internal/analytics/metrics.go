// internal/analytics/metrics.go
package analytics

import (
	"sort"

	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/models"

	"github.com/shopspring/decimal"
)

// InfluencerMetrics — метрики одного инфлюенсера внутри выборки.
type InfluencerMetrics struct {
	InfluencerID    int64           `json:"influencerId"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Platform        string          `json:"platform"`
	Orders          int             `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	Payout          decimal.Decimal `json:"payout"`
	ROI             Ratio           `json:"roi"`
	IncrementalROAS Ratio           `json:"incrementalRoas"`
}

// Metrics — агрегированные показатели кампании по выборке.
type Metrics struct {
	Orders             int                 `json:"orders"`
	TotalRevenue       decimal.Decimal     `json:"totalRevenue"`
	TotalPayout        decimal.Decimal     `json:"totalPayout"`
	OrganicBaseline    decimal.Decimal     `json:"organicBaselineRevenue"`
	IncrementalRevenue decimal.Decimal     `json:"incrementalRevenue"`
	ROI                Ratio               `json:"roi"`
	IncrementalROAS    Ratio               `json:"incrementalRoas"`
	Influencers        []InfluencerMetrics `json:"influencers"`
	Skipped            dataset.SkipCounts  `json:"skippedRows"`
}

// Empty сообщает, что под выборку не попало ни одной строки.
func (m Metrics) Empty() bool {
	return m.Orders == 0
}

// ComputeMetrics вычисляет KPI кампании по отфильтрованному набору
// трекинговых записей. Функция чистая и детерминированная: одинаковые
// входы всегда дают одинаковый результат.
//
// Суммы накапливаются в decimal без потерь точности. Деление на нулевую
// сумму выплат дает явное значение N/A, а не ошибку и не ноль.
//
// Органический базлайн ограничен только диапазоном дат выборки, без учета
// фильтров по нише и площадке: у органической выручки нет инфлюенсера.
// Это осознанно воспроизводит поведение исходного дашборда.
func ComputeMetrics(snap *dataset.Snapshot, sel Selection, filtered []models.Tracking) Metrics {
	m := Metrics{
		TotalRevenue:       decimal.Zero,
		TotalPayout:        decimal.Zero,
		OrganicBaseline:    decimal.Zero,
		IncrementalRevenue: decimal.Zero,
		Skipped:            snap.Skipped,
	}

	// Выручка и число заказов на инфлюенсера.
	revenueByID := make(map[int64]decimal.Decimal)
	ordersByID := make(map[int64]int)
	for _, t := range filtered {
		id := *t.InfluencerID
		m.Orders++
		m.TotalRevenue = m.TotalRevenue.Add(t.Revenue)
		revenueByID[id] = revenueByID[id].Add(t.Revenue)
		ordersByID[id]++
	}

	// Выплата учитывается, только если у инфлюенсера есть хотя бы одна
	// строка в выборке.
	for id := range revenueByID {
		if payout, ok := snap.Payout(id); ok {
			m.TotalPayout = m.TotalPayout.Add(payout.TotalPayout)
		}
	}

	// Органический базлайн: записи без инфлюенсера в том же диапазоне дат.
	for _, t := range snap.Tracking {
		if t.InfluencerID == nil && sel.inRange(t.Date) {
			m.OrganicBaseline = m.OrganicBaseline.Add(t.Revenue)
		}
	}

	m.IncrementalRevenue = m.TotalRevenue.Sub(m.OrganicBaseline)
	m.ROI = SafeDiv(m.TotalRevenue, m.TotalPayout)
	m.IncrementalROAS = SafeDiv(m.IncrementalRevenue, m.TotalPayout)

	// Разбивка по инфлюенсерам, отсортированная по id для детерминизма.
	m.Influencers = make([]InfluencerMetrics, 0, len(revenueByID))
	for id, revenue := range revenueByID {
		inf, ok := snap.Influencer(id)
		if !ok {
			continue
		}
		payout := decimal.Zero
		if p, found := snap.Payout(id); found {
			payout = p.TotalPayout
		}
		m.Influencers = append(m.Influencers, InfluencerMetrics{
			InfluencerID: id,
			Name:         inf.Name,
			Category:     inf.Category,
			Platform:     inf.Platform,
			Orders:       ordersByID[id],
			Revenue:      revenue,
			Payout:       payout,
			ROI:          SafeDiv(revenue, payout),
			// На уровне инфлюенсера используется тот же глобальный базлайн:
			// собственная органическая доля инфлюенсера по определению нулевая.
			IncrementalROAS: SafeDiv(revenue.Sub(m.OrganicBaseline), payout),
		})
	}
	sort.Slice(m.Influencers, func(i, j int) bool {
		return m.Influencers[i].InfluencerID < m.Influencers[j].InfluencerID
	})

	return m
}
