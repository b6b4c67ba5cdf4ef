// internal/dataset/postgres.go
package dataset

import (
	"fmt"

	"influencer-dashboard/models"

	"gorm.io/gorm"
)

// LoadDB загружает четыре таблицы из Postgres. Источник поведенчески
// эквивалентен CSV-загрузке: результатом остается неизменяемый снимок,
// валидация внешних ключей и счетчики пропусков работают так же.
// Ограничения "не отрицательно" здесь обеспечивает схема БД, поэтому
// счетчики пропусков на этом этапе нулевые.
func LoadDB(db *gorm.DB) (*Snapshot, error) {
	var influencers []models.Influencer
	if err := db.Order("id asc").Find(&influencers).Error; err != nil {
		return nil, fmt.Errorf("load influencers: %w", err)
	}

	var posts []models.Post
	if err := db.Order("date asc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	var tracking []models.Tracking
	if err := db.Order("date asc, order_id asc").Find(&tracking).Error; err != nil {
		return nil, fmt.Errorf("load tracking: %w", err)
	}

	var payouts []models.Payout
	if err := db.Order("influencer_id asc").Find(&payouts).Error; err != nil {
		return nil, fmt.Errorf("load payouts: %w", err)
	}

	return New(influencers, posts, tracking, payouts, SkipCounts{}), nil
}
