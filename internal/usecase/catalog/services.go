package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// ===============================
// ListServices
// ===============================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute: fora do admin só aparecem serviços ativos.
func (uc *ListServices) Execute(ctx context.Context, a actor.Actor) ([]models.Service, error) {
	return uc.repo.List(ctx, a.ShopID, !a.IsAdmin())
}

// Public atende a página de agendamento, sem sessão.
func (uc *ListServices) Public(ctx context.Context, shopID string) ([]models.Service, error) {
	return uc.repo.List(ctx, shopID, true)
}

// ===============================
// SaveService
// ===============================

type ServiceInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	DurationMin int
	Active      *bool
}

type SaveService struct {
	repo     domain.Repository
	haircuts haircut.Repository
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewSaveService(
	repo domain.Repository,
	haircuts haircut.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *SaveService {
	return &SaveService{repo: repo, haircuts: haircuts, audit: audit, clock: clock}
}

func (uc *SaveService) Create(ctx context.Context, a actor.Actor, in ServiceInput) (*models.Service, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	s := &models.Service{
		ShopID:      a.ShopID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Active:      in.Active == nil || *in.Active,
		UpdatedBy:   a.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := domain.ValidateService(s); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.dispatch(a, "service_created", s.ID)
	return s, nil
}

func (uc *SaveService) Update(ctx context.Context, a actor.Actor, id string, in ServiceInput) (*models.Service, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	current, err := uc.repo.Get(ctx, a.ShopID, id)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Name = in.Name
	next.Description = in.Description
	next.Price = in.Price
	next.DurationMin = in.DurationMin
	if in.Active != nil {
		next.Active = *in.Active
	}
	next.UpdatedBy = a.UserID
	next.UpdatedAt = uc.clock.Now()

	if err := domain.ValidateService(&next); err != nil {
		return nil, err
	}

	refs, err := uc.haircuts.CountByService(ctx, a.ShopID, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckPricingChange(current, &next, refs > 0); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, &next, domain.PricingChanged(current, &next)); err != nil {
		return nil, err
	}

	uc.dispatch(a, "service_updated", next.ID)
	return &next, nil
}

// Delete só remove serviço nunca usado; com registros, o caminho é desativar.
func (uc *SaveService) Delete(ctx context.Context, a actor.Actor, id string) error {
	if err := a.RequireAdmin(); err != nil {
		return err
	}

	if _, err := uc.repo.Get(ctx, a.ShopID, id); err != nil {
		return err
	}

	refs, err := uc.haircuts.CountByService(ctx, a.ShopID, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrServiceInUse
	}

	if err := uc.repo.Delete(ctx, a.ShopID, id); err != nil {
		return err
	}

	uc.dispatch(a, "service_deleted", id)
	return nil
}

func (uc *SaveService) dispatch(a actor.Actor, action, id string) {
	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   action,
		Entity:   "service",
		EntityID: id,
	})
}
