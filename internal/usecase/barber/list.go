package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type ListBarbers struct {
	repo domain.Repository
}

func NewListBarbers(repo domain.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

// Execute: admin vê todos os status; barbeiro só vê colegas ativos.
func (uc *ListBarbers) Execute(
	ctx context.Context,
	a actor.Actor,
	status domain.Status,
) ([]models.User, error) {

	if status != "" && !status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	if !a.IsAdmin() {
		status = domain.StatusActive
	}

	return uc.repo.ListUsers(ctx, a.ShopID, domain.ListFilter{
		Role:   string(actor.RoleBarber),
		Status: status,
	})
}

// ListActiveBarbers atende a página pública de agendamento.
type ListActiveBarbers struct {
	repo domain.Repository
}

func NewListActiveBarbers(repo domain.Repository) *ListActiveBarbers {
	return &ListActiveBarbers{repo: repo}
}

func (uc *ListActiveBarbers) Execute(ctx context.Context, shopID string) ([]models.User, error) {
	if _, err := uc.repo.GetBarbershop(ctx, shopID); err != nil {
		return nil, err
	}
	return uc.repo.ListUsers(ctx, shopID, domain.ListFilter{
		Role:   string(actor.RoleBarber),
		Status: domain.StatusActive,
	})
}
