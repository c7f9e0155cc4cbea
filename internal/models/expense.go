package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	Base
	ShopID string `gorm:"size:36;not null;index" json:"shop_id"`

	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type        string          `gorm:"size:20;not null" json:"type"`
	Category    string          `gorm:"size:30;not null" json:"category"`
	Date        string          `gorm:"size:10;not null;index" json:"date"`

	CreatedBy     string    `gorm:"size:36;not null" json:"created_by"`
	CreatedByName string    `gorm:"size:100" json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}
