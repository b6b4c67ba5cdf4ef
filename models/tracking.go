// models/tracking.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tracking представляет один атрибутированный заказ из трекинговой выгрузки.
// InfluencerID == nil означает органическую выручку: заказ пришел не от
// инфлюенсера и участвует только в расчете органического базлайна.
type Tracking struct {
	OrderID      string          `json:"orderId" gorm:"primaryKey;column:order_id"`
	InfluencerID *int64          `json:"influencerId" gorm:"column:influencer_id"`
	Date         time.Time       `json:"date"`
	Revenue      decimal.Decimal `json:"revenue" gorm:"type:numeric(12,2)"`
}

// IsOrganic сообщает, относится ли запись к органическому базлайну.
func (t Tracking) IsOrganic() bool {
	return t.InfluencerID == nil
}

func (Tracking) TableName() string {
	return "tracking_data"
}
