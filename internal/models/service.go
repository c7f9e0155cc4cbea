package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	Base
	ShopID string `gorm:"size:36;not null;index" json:"shop_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Active      bool            `gorm:"not null" json:"active"`

	UpdatedBy string    `gorm:"size:36" json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
