// internal/analytics/leaderboard.go
package analytics

import "sort"

// Order — направление сортировки лидерборда.
type Order string

const (
	// Descending — лучшие по ROI первыми.
	Descending Order = "desc"
	// Ascending — худшие по ROI первыми.
	Ascending Order = "asc"
)

// Rank возвращает разбивку по инфлюенсерам, упорядоченную по ROI.
//
// Инфлюенсеры без определенного ROI (нулевая выплата) образуют отдельную
// группу: в порядке убывания они идут последними, в порядке возрастания —
// первыми. Равные ROI упорядочиваются по возрастанию id в обоих
// направлениях, поэтому результат полностью детерминирован.
func Rank(influencers []InfluencerMetrics, order Order) []InfluencerMetrics {
	ranked := make([]InfluencerMetrics, len(influencers))
	copy(ranked, influencers)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ROI.Valid != b.ROI.Valid {
			if order == Descending {
				return a.ROI.Valid // N/A в конец
			}
			return !a.ROI.Valid // N/A в начало
		}
		if a.ROI.Valid && a.ROI.Value != b.ROI.Value {
			if order == Descending {
				return a.ROI.Value > b.ROI.Value
			}
			return a.ROI.Value < b.ROI.Value
		}
		return a.InfluencerID < b.InfluencerID
	})

	return ranked
}

// TopN возвращает первые n элементов лидерборда.
func TopN(ranked []InfluencerMetrics, n int) []InfluencerMetrics {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
