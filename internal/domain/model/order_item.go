package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。name/priceは購入時点のスナップショット。
// ProductIDは商品削除に備えてnull可。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID *int64          `gorm:"index" json:"product_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Count     int64           `gorm:"not null" json:"count"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"date_added"`
}
