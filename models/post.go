// models/post.go
package models

import "time"

// Post представляет одну публикацию инфлюенсера.
// У одного инфлюенсера может быть много публикаций.
type Post struct {
	InfluencerID int64     `json:"influencerId" gorm:"column:influencer_id"`
	Date         time.Time `json:"date"`
	Platform     string    `json:"platform"`
	Reach        int64     `json:"reach"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
}

// Engagement возвращает суммарную вовлеченность публикации.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments
}

func (Post) TableName() string {
	return "posts"
}
