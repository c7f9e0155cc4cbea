package models

import "time"

// User é o perfil do usuário; o ID é o mesmo da conta no provedor de autenticação.
type User struct {
	Base
	ShopID   string `gorm:"size:36;not null;index" json:"shop_id"`
	ShopName string `gorm:"size:100" json:"shop_name"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null;index" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;not null" json:"role"`

	Status     string     `gorm:"size:20;not null;index" json:"status"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy string     `gorm:"size:36" json:"approved_by,omitempty"`

	UpdatedBy string    `gorm:"size:36" json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
