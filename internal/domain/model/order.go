package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNotProcessed OrderStatus = "not_processed"
	OrderStatusProcessed    OrderStatus = "processed"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// 確定済みの注文。作成後は更新しない（履歴）。
// shipping_*は購入時点の配送オプションのスナップショット。
type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64       `gorm:"not null;index" json:"user_id"`
	TransactionID string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"transaction_id"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'not_processed'" json:"status"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`

	FullName            string `gorm:"type:varchar(255);not null" json:"full_name"`
	AddressLine1        string `gorm:"type:varchar(255);not null" json:"address_line_1"`
	AddressLine2        string `gorm:"type:varchar(255)" json:"address_line_2"`
	City                string `gorm:"type:varchar(255);not null" json:"city"`
	StateProvinceRegion string `gorm:"type:varchar(255);not null" json:"state_province_region"`
	PostalZipCode       string `gorm:"type:varchar(20);not null" json:"postal_zip_code"`
	CountryRegion       string `gorm:"type:varchar(255);not null" json:"country_region"`
	TelephoneNumber     string `gorm:"type:varchar(255);not null" json:"telephone_number"`

	ShippingName  string          `gorm:"type:varchar(255);not null" json:"shipping_name"`
	ShippingTime  string          `gorm:"type:varchar(255);not null" json:"shipping_time"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"date_issued"`
}
