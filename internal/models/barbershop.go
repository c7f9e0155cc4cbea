package models

import "time"

type Barbershop struct {
	Base
	Name     string `gorm:"size:100;not null" json:"name"`
	OwnerID  string `gorm:"size:36;index" json:"owner_id"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
