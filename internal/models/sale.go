package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord é imutável depois de criado.
type SaleRecord struct {
	Base
	ShopID      string `gorm:"size:36;not null;index" json:"shop_id"`
	ProductID   string `gorm:"size:36;not null;index" json:"product_id"`
	ProductName string `gorm:"size:100" json:"product_name"`

	Quantity int             `gorm:"not null" json:"quantity"`
	Cost     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Profit   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"profit"`

	SoldBy     string    `gorm:"size:36;not null" json:"sold_by"`
	SoldByName string    `gorm:"size:100" json:"sold_by_name"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (SaleRecord) TableName() string { return "sales" }
