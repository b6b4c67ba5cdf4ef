// internal/dataset/snapshot.go
package dataset

import (
	"log/slog"
	"sort"
	"time"

	"influencer-dashboard/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SkipCounts — счетчики строк, отброшенных при загрузке и валидации.
// Возвращаются презентационному слою вместе с метриками, чтобы пользователь
// видел, что часть данных не попала в расчет.
type SkipCounts struct {
	Influencers int `json:"influencers"`
	Posts       int `json:"posts"`
	Tracking    int `json:"tracking"`
	Payouts     int `json:"payouts"`
}

// Total возвращает суммарное число пропущенных строк.
func (s SkipCounts) Total() int {
	return s.Influencers + s.Posts + s.Tracking + s.Payouts
}

// Snapshot — неизменяемый снимок четырех таблиц на одну сессию дашборда.
// Ядро аналитики никогда не мутирует снимок: все агрегаты — чистые функции
// от него и выбранных фильтров.
type Snapshot struct {
	LoadID   string
	LoadedAt time.Time

	Influencers []models.Influencer
	Posts       []models.Post
	Tracking    []models.Tracking
	Payouts     []models.Payout
	Skipped     SkipCounts

	influencerByID map[int64]int
	payoutByID     map[int64]int
}

// New собирает снимок из загруженных таблиц и доводит его до целостного
// состояния: строки с неразрешимыми внешними ключами отбрасываются и
// учитываются в счетчиках, а пустые суммы выплат доводятся до значения
// rate × число единиц базиса.
func New(influencers []models.Influencer, posts []models.Post, tracking []models.Tracking, payouts []models.Payout, skipped SkipCounts) *Snapshot {
	s := &Snapshot{
		LoadID:         uuid.NewString(),
		LoadedAt:       time.Now(),
		Skipped:        skipped,
		influencerByID: make(map[int64]int, len(influencers)),
		payoutByID:     make(map[int64]int),
	}

	for _, inf := range influencers {
		if _, dup := s.influencerByID[inf.ID]; dup {
			// Дубликат идентификатора — оставляем первую запись.
			s.Skipped.Influencers++
			continue
		}
		s.influencerByID[inf.ID] = len(s.Influencers)
		s.Influencers = append(s.Influencers, inf)
	}

	// Число публикаций и заказов на инфлюенсера — базис для расчета выплат.
	postCount := make(map[int64]int64)
	orderCount := make(map[int64]int64)

	for _, p := range posts {
		if _, ok := s.influencerByID[p.InfluencerID]; !ok {
			s.Skipped.Posts++
			continue
		}
		postCount[p.InfluencerID]++
		s.Posts = append(s.Posts, p)
	}

	for _, t := range tracking {
		if t.InfluencerID != nil {
			if _, ok := s.influencerByID[*t.InfluencerID]; !ok {
				s.Skipped.Tracking++
				continue
			}
			orderCount[*t.InfluencerID]++
		}
		s.Tracking = append(s.Tracking, t)
	}

	for _, p := range payouts {
		if _, ok := s.influencerByID[p.InfluencerID]; !ok {
			s.Skipped.Payouts++
			continue
		}
		if _, dup := s.payoutByID[p.InfluencerID]; dup {
			s.Skipped.Payouts++
			continue
		}
		if p.TotalPayout.IsZero() && p.Rate.IsPositive() {
			units := orderCount[p.InfluencerID]
			if p.Basis == models.PayoutBasisPerPost {
				units = postCount[p.InfluencerID]
			}
			p.TotalPayout = p.Rate.Mul(decimal.NewFromInt(units))
		}
		s.payoutByID[p.InfluencerID] = len(s.Payouts)
		s.Payouts = append(s.Payouts, p)
	}

	if n := s.Skipped.Total(); n > 0 {
		slog.Warn("Снимок данных собран с пропусками", "load_id", s.LoadID, "skipped", n)
	} else {
		slog.Info("Снимок данных собран", "load_id", s.LoadID,
			"influencers", len(s.Influencers), "posts", len(s.Posts),
			"tracking", len(s.Tracking), "payouts", len(s.Payouts))
	}
	return s
}

// Influencer возвращает инфлюенсера по идентификатору.
func (s *Snapshot) Influencer(id int64) (models.Influencer, bool) {
	idx, ok := s.influencerByID[id]
	if !ok {
		return models.Influencer{}, false
	}
	return s.Influencers[idx], true
}

// Payout возвращает условия выплаты для инфлюенсера.
func (s *Snapshot) Payout(influencerID int64) (models.Payout, bool) {
	idx, ok := s.payoutByID[influencerID]
	if !ok {
		return models.Payout{}, false
	}
	return s.Payouts[idx], true
}

// Categories возвращает отсортированный список уникальных ниш.
func (s *Snapshot) Categories() []string {
	return s.distinct(func(inf models.Influencer) string { return inf.Category })
}

// Platforms возвращает отсортированный список уникальных площадок.
func (s *Snapshot) Platforms() []string {
	return s.distinct(func(inf models.Influencer) string { return inf.Platform })
}

func (s *Snapshot) distinct(key func(models.Influencer) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, inf := range s.Influencers {
		v := key(inf)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// DateBounds возвращает минимальную и максимальную даты по трекинговым
// записям. Для пустого снимка обе даты нулевые.
func (s *Snapshot) DateBounds() (time.Time, time.Time) {
	if len(s.Tracking) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := s.Tracking[0].Date, s.Tracking[0].Date
	for _, t := range s.Tracking[1:] {
		if t.Date.Before(min) {
			min = t.Date
		}
		if t.Date.After(max) {
			max = t.Date
		}
	}
	return min, max
}
