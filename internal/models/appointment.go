package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	Base
	ShopID string `gorm:"size:36;not null;index" json:"shop_id"`

	BarberID   string `gorm:"size:36;not null" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	ServiceID   string          `gorm:"size:36;not null" json:"service_id"`
	ServiceName string          `gorm:"size:100" json:"service_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	Notes       string `gorm:"size:255" json:"notes"`

	// Date no formato 2006-01-02, Time no formato 15:04 (início do slot).
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;not null" json:"status"`

	UpdatedBy string    `gorm:"size:36" json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
