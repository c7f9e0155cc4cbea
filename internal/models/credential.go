package models

import "time"

// Credential pertence ao provedor de autenticação local, não ao domínio.
type Credential struct {
	Base
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
