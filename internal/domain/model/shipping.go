package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 配送オプション（参照データ）
type Shipping struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	TimeToDelivery string          `gorm:"type:varchar(255);not null" json:"time_to_delivery"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
