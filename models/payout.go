// models/payout.go
package models

import "github.com/shopspring/decimal"

// Базис выплаты: за публикацию или за заказ.
const (
	PayoutBasisPerPost  = "per_post"
	PayoutBasisPerOrder = "per_order"
)

// Payout представляет условия и итоговую сумму выплаты инфлюенсеру.
// TotalPayout = Rate × число единиц базиса (публикаций или заказов),
// атрибутированных этому инфлюенсеру.
type Payout struct {
	InfluencerID int64           `json:"influencerId" gorm:"primaryKey;column:influencer_id"`
	Basis        string          `json:"basis"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:numeric(12,2)"`
	TotalPayout  decimal.Decimal `json:"totalPayout" gorm:"column:total_payout;type:numeric(12,2)"`
}

// ValidBasis проверяет, что базис выплаты — одно из допустимых значений.
func ValidBasis(basis string) bool {
	return basis == PayoutBasisPerPost || basis == PayoutBasisPerOrder
}

func (Payout) TableName() string {
	return "payouts"
}
