package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type HaircutRecord struct {
	Base
	ShopID     string `gorm:"size:36;not null;index" json:"shop_id"`
	BarberID   string `gorm:"size:36;not null;index" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	ServiceID   string          `gorm:"size:36;not null;index" json:"service_id"`
	ServiceName string          `gorm:"size:100" json:"service_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	ClientName    string `gorm:"size:100" json:"client_name"`
	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	Notes         string `gorm:"size:255" json:"notes"`

	Status         string     `gorm:"size:20;not null;index" json:"status"`
	ApprovalStatus string     `gorm:"size:20;not null;index" json:"approval_status"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedBy     string     `gorm:"size:36" json:"approved_by,omitempty"`
	ApprovedByName string     `gorm:"size:100" json:"approved_by_name,omitempty"`

	UpdatedBy string    `gorm:"size:36" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HaircutRecord) TableName() string { return "haircuts" }
