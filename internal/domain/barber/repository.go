package barber

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type ListFilter struct {
	Role   string
	Status Status
}

// StatusChange descreve uma escrita condicional: só aplica se o status atual for From.
type StatusChange struct {
	ShopID  string
	UserID  string
	From    Status
	To      Status
	ActorID string
	At      time.Time
	// Approval carimba approved_at/approved_by junto com o status.
	Approval bool
}

type Repository interface {
	// -------- Barbershop --------
	CreateShopWithOwner(ctx context.Context, shop *models.Barbershop, owner *models.User) error
	GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error)
	ListBarbershops(ctx context.Context, search string) ([]models.Barbershop, error)
	UpdateBarbershop(ctx context.Context, shop *models.Barbershop) error

	// -------- Users --------
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, shopID, id string) (*models.User, error)
	// FindUser resolve o perfil da sessão; é a única leitura sem escopo de loja.
	FindUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, shopID string, f ListFilter) ([]models.User, error)

	ChangeStatus(ctx context.Context, ch StatusChange) (*models.User, error)
}
