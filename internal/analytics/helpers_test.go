package analytics

import (
	"time"

	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/models"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(id int64) *int64 {
	return &id
}

// testSnapshot собирает снимок с двумя площадками и тремя нишами:
//   - id 1: Fitness/Instagram, выплата 1000, выручка 2500+1500=4000
//   - id 2: Beauty/YouTube, выплата 500, одна строка с нулевой выручкой
//   - id 3: Tech/YouTube, выручка 100, выплаты нет (ROI не определен)
//
// Органический базлайн января: 1200 + 800 = 2000.
func testSnapshot() *dataset.Snapshot {
	influencers := []models.Influencer{
		{ID: 1, Name: "Asha", Category: "Fitness", Platform: "Instagram", FollowerCount: 250000},
		{ID: 2, Name: "Rohan", Category: "Beauty", Platform: "YouTube", FollowerCount: 480000},
		{ID: 3, Name: "Priya", Category: "Tech", Platform: "YouTube", FollowerCount: 130000},
	}
	tracking := []models.Tracking{
		{OrderID: "ORD-1", InfluencerID: ptr(1), Date: date("2025-01-10"), Revenue: dec("2500")},
		{OrderID: "ORD-2", InfluencerID: ptr(2), Date: date("2025-01-15"), Revenue: dec("0")},
		{OrderID: "ORD-3", InfluencerID: nil, Date: date("2025-01-12"), Revenue: dec("1200")},
		{OrderID: "ORD-4", InfluencerID: ptr(1), Date: date("2025-01-20"), Revenue: dec("1500")},
		{OrderID: "ORD-5", InfluencerID: nil, Date: date("2025-01-25"), Revenue: dec("800")},
		{OrderID: "ORD-6", InfluencerID: ptr(3), Date: date("2025-01-18"), Revenue: dec("100")},
	}
	payouts := []models.Payout{
		{InfluencerID: 1, Basis: models.PayoutBasisPerPost, Rate: dec("500"), TotalPayout: dec("1000")},
		{InfluencerID: 2, Basis: models.PayoutBasisPerOrder, Rate: dec("500"), TotalPayout: dec("500")},
	}
	return dataset.New(influencers, nil, tracking, payouts, dataset.SkipCounts{})
}

func january() Selection {
	return SelectAll(date("2025-01-01"), date("2025-01-31"))
}
