package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 定額割引クーポン
type FixedPriceCoupon struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_price"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 割合割引クーポン（0〜100）
type PercentageCoupon struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	DiscountPercent float64   `gorm:"not null" json:"discount_percent"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
