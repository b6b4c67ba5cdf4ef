// internal/analytics/charts.go
package analytics

import (
	"sort"

	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/models"

	"github.com/shopspring/decimal"
)

// GroupMetrics — агрегат по одному значению группировки (ниша или площадка).
type GroupMetrics struct {
	Key     string          `json:"key"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Payout  decimal.Decimal `json:"payout"`
	ROI     Ratio           `json:"roi"`
}

// GroupByCategory агрегирует выборку по нишам инфлюенсеров.
func GroupByCategory(snap *dataset.Snapshot, filtered []models.Tracking) []GroupMetrics {
	return groupBy(snap, filtered, func(inf models.Influencer) string { return inf.Category })
}

// GroupByPlatform агрегирует выборку по площадкам инфлюенсеров.
func GroupByPlatform(snap *dataset.Snapshot, filtered []models.Tracking) []GroupMetrics {
	return groupBy(snap, filtered, func(inf models.Influencer) string { return inf.Platform })
}

func groupBy(snap *dataset.Snapshot, filtered []models.Tracking, key func(models.Influencer) string) []GroupMetrics {
	revenue := make(map[string]decimal.Decimal)
	orders := make(map[string]int)
	// Выплата инфлюенсера попадает в группу один раз, а не на каждый заказ.
	seen := make(map[int64]bool)
	payout := make(map[string]decimal.Decimal)

	for _, t := range filtered {
		inf, ok := snap.Influencer(*t.InfluencerID)
		if !ok {
			continue
		}
		k := key(inf)
		revenue[k] = revenue[k].Add(t.Revenue)
		orders[k]++
		if !seen[inf.ID] {
			seen[inf.ID] = true
			if p, found := snap.Payout(inf.ID); found {
				payout[k] = payout[k].Add(p.TotalPayout)
			}
		}
	}

	groups := make([]GroupMetrics, 0, len(revenue))
	for k, rev := range revenue {
		p := payout[k]
		groups = append(groups, GroupMetrics{
			Key:     k,
			Orders:  orders[k],
			Revenue: rev,
			Payout:  p,
			ROI:     SafeDiv(rev, p),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// TopGroupsByROI возвращает не более n групп с наибольшим ROI.
// Группы без определенного ROI идут последними, равные ROI — по ключу.
func TopGroupsByROI(groups []GroupMetrics, n int) []GroupMetrics {
	ranked := make([]GroupMetrics, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ROI.Valid != b.ROI.Valid {
			return a.ROI.Valid
		}
		if a.ROI.Valid && a.ROI.Value != b.ROI.Value {
			return a.ROI.Value > b.ROI.Value
		}
		return a.Key < b.Key
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// DayPoint — точка ежедневного временного ряда выручки.
type DayPoint struct {
	Date              string          `json:"date"`
	InfluencerRevenue decimal.Decimal `json:"influencerRevenue"`
	OrganicRevenue    decimal.Decimal `json:"organicRevenue"`
}

// DailyRevenue строит ежедневный ряд: выручка от инфлюенсеров из выборки
// и органическая выручка в том же диапазоне дат.
func DailyRevenue(snap *dataset.Snapshot, sel Selection, filtered []models.Tracking) []DayPoint {
	const day = "2006-01-02"
	influencer := make(map[string]decimal.Decimal)
	organic := make(map[string]decimal.Decimal)

	for _, t := range filtered {
		k := t.Date.Format(day)
		influencer[k] = influencer[k].Add(t.Revenue)
	}
	for _, t := range snap.Tracking {
		if t.InfluencerID == nil && sel.inRange(t.Date) {
			k := t.Date.Format(day)
			organic[k] = organic[k].Add(t.Revenue)
		}
	}

	keys := make(map[string]bool, len(influencer)+len(organic))
	for k := range influencer {
		keys[k] = true
	}
	for k := range organic {
		keys[k] = true
	}

	points := make([]DayPoint, 0, len(keys))
	for k := range keys {
		points = append(points, DayPoint{
			Date:              k,
			InfluencerRevenue: influencer[k],
			OrganicRevenue:    organic[k],
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
