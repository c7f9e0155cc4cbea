package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type ShopInput struct {
	Name     string
	Phone    string
	Address  string
	Timezone string
}

type UpdateBarbershop struct {
	repo  barber.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewUpdateBarbershop(repo barber.Repository, audit *audit.Dispatcher, clock timezone.Clock) *UpdateBarbershop {
	return &UpdateBarbershop{repo: repo, audit: audit, clock: clock}
}

// Execute troca os dados da loja; o nome é replicado nos perfis da equipe.
func (uc *UpdateBarbershop) Execute(ctx context.Context, a actor.Actor, in ShopInput) (*models.Barbershop, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = shop.Timezone
	}
	if !timezone.IsValid(tz) {
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	shop.Name = name
	shop.Phone = strings.TrimSpace(in.Phone)
	shop.Address = strings.TrimSpace(in.Address)
	shop.Timezone = tz
	shop.UpdatedAt = uc.clock.Now()

	if err := uc.repo.UpdateBarbershop(ctx, shop); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "shop_updated",
		Entity:   "barbershop",
		EntityID: shop.ID,
	})
	return shop, nil
}
