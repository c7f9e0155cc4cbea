package haircut

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/report"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type ListInput struct {
	BarberID string
	Approval string
	// dias YYYY-MM-DD, inclusivos, no fuso da loja
	From string
	To   string
}

type ListHaircuts struct {
	repo  domain.Repository
	shops barber.Repository
}

func NewListHaircuts(repo domain.Repository, shops barber.Repository) *ListHaircuts {
	return &ListHaircuts{repo: repo, shops: shops}
}

// Execute: barbeiro só enxerga os próprios registros.
func (uc *ListHaircuts) Execute(
	ctx context.Context,
	a actor.Actor,
	in ListInput,
) ([]models.HaircutRecord, error) {

	approval := domain.Approval(in.Approval)
	switch approval {
	case "", domain.ApprovalPending, domain.ApprovalApproved, domain.ApprovalRejected:
	default:
		return nil, httperr.ErrBusiness("invalid_approval_status")
	}

	f := domain.ListFilter{
		BarberID: in.BarberID,
		Approval: approval,
	}
	if in.From != "" || in.To != "" {
		shop, err := uc.shops.GetBarbershop(ctx, a.ShopID)
		if err != nil {
			return nil, err
		}
		loc := timezone.Location(shop.Timezone)
		if f.From, err = dayStart(in.From, loc, "invalid_from"); err != nil {
			return nil, err
		}
		if f.To, err = dayStart(in.To, loc, "invalid_to"); err != nil {
			return nil, err
		}
		if !f.To.IsZero() {
			f.To = f.To.AddDate(0, 0, 1)
		}
	}
	if !a.IsAdmin() {
		f.BarberID = a.UserID
	}

	return uc.repo.List(ctx, a.ShopID, f)
}

func dayStart(day string, loc *time.Location, code string) (time.Time, error) {
	if day == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(code)
	}
	return t, nil
}

// PendingHaircuts é a fila de aprovação do admin, mais recentes primeiro.
type PendingHaircuts struct {
	repo domain.Repository
}

func NewPendingHaircuts(repo domain.Repository) *PendingHaircuts {
	return &PendingHaircuts{repo: repo}
}

func (uc *PendingHaircuts) Execute(ctx context.Context, a actor.Actor) ([]models.HaircutRecord, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	list, err := uc.repo.List(ctx, a.ShopID, domain.ListFilter{Approval: domain.ApprovalPending})
	if err != nil {
		return nil, err
	}
	return report.PendingQueue(list), nil
}
