package haircut

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/catalog"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type RegisterInput struct {
	// só o admin informa; para o barbeiro vale o próprio ID
	BarberID      string
	ServiceID     string
	ClientName    string
	PaymentMethod string
	Notes         string
}

type RegisterHaircut struct {
	users    barber.Repository
	services catalog.Repository
	haircuts domain.Repository
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewRegisterHaircut(
	users barber.Repository,
	services catalog.Repository,
	haircuts domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *RegisterHaircut {
	return &RegisterHaircut{
		users:    users,
		services: services,
		haircuts: haircuts,
		audit:    audit,
		clock:    clock,
	}
}

func (uc *RegisterHaircut) Execute(
	ctx context.Context,
	a actor.Actor,
	in RegisterInput,
) (*models.HaircutRecord, error) {

	barberID := a.UserID
	if a.IsAdmin() && in.BarberID != "" {
		barberID = in.BarberID
	}

	b, err := uc.users.GetUser(ctx, a.ShopID, barberID)
	if err != nil {
		return nil, err
	}
	if b.Status != string(barber.StatusActive) {
		return nil, httperr.ErrBusiness("barber_not_active")
	}

	svc, err := uc.services.Get(ctx, a.ShopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	rec, err := domain.NewRecord(a, b, svc, domain.RecordInput{
		ClientName:    in.ClientName,
		PaymentMethod: domain.PaymentMethod(in.PaymentMethod),
		Notes:         in.Notes,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.haircuts.Create(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "haircut_registered",
		Entity:   "haircut",
		EntityID: rec.ID,
		Metadata: map[string]string{"approval": rec.ApprovalStatus},
	})

	return rec, nil
}
