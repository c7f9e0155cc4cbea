package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Base
	ShopID string `gorm:"size:36;not null;index" json:"shop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"size:255" json:"description"`

	Cost         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	ProfitMargin decimal.Decimal `gorm:"type:numeric(7,2)" json:"profit_margin"`

	Stock    int    `gorm:"not null" json:"stock"`
	MinStock int    `gorm:"not null" json:"min_stock"`
	Barcode  string `gorm:"size:64" json:"barcode,omitempty"`
	ImageURL string `gorm:"size:255" json:"image_url,omitempty"`

	UpdatedBy string    `gorm:"size:36" json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "inventory" }
