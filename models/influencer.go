// models/influencer.go
package models

// Influencer представляет инфлюенсера, участвующего в кампании.
// Записи загружаются один раз за сессию и после загрузки не изменяются.
type Influencer struct {
	ID            int64  `json:"id" gorm:"primaryKey;column:id"`
	Name          string `json:"name"`
	Category      string `json:"category"` // Ниша: Fitness, Beauty, Tech и т.д.
	Platform      string `json:"platform"` // Основная площадка: Instagram, YouTube и т.д.
	FollowerCount int64  `json:"followerCount" gorm:"column:follower_count"`
}

// TableName задает имя таблицы для источника данных Postgres.
func (Influencer) TableName() string {
	return "influencers"
}
