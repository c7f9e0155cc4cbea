package actor

import "github.com/BruksfildServices01/barbershop-manager/internal/httperr"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBarber Role = "barber"
)

// Actor é a sessão autenticada, passada explicitamente para cada operação.
type Actor struct {
	UserID string
	ShopID string
	Name   string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RequireAdmin falha com forbidden quando o ator não é admin.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return httperr.ErrForbidden("admin_only")
	}
	return nil
}

func (a Actor) Valid() bool {
	return a.UserID != "" && a.ShopID != ""
}
