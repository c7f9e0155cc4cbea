package dto

import (
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// UserDTO é o perfil público, sem campos de auditoria.
type UserDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	ShopID     string     `json:"shop_id"`
	ShopName   string     `json:"shop_name"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		ShopID:     u.ShopID,
		ShopName:   u.ShopName,
		ApprovedAt: u.ApprovedAt,
		CreatedAt:  u.CreatedAt,
	}
}

func Users(us []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(us))
	for i := range us {
		out = append(out, User(&us[i]))
	}
	return out
}
