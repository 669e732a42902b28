package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quantityが在庫の現在値。Soldは累計販売数で減らない。
type Product struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	PhotoURL     string          `gorm:"type:varchar(1024)" json:"photo_url"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ComparePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"compare_price"`
	Quantity     int64           `gorm:"not null" json:"quantity"`
	Sold         int64           `gorm:"not null;default:0" json:"sold"`
	CategoryID   int64           `gorm:"not null;index" json:"category_id"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
