package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/dto"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

// Execute recebe o mês como YYYY-MM.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	a actor.Actor,
	month string,
	in ListInput,
) ([]dto.AppointmentListDTO, error) {

	first, ok := timezone.ParseMonth(month, "UTC")
	if !ok {
		return nil, httperr.ErrBusiness("invalid_month")
	}
	start, end := timezone.MonthBounds(first)

	f, err := in.filter(a)
	if err != nil {
		return nil, err
	}
	f.From = start.Format(domain.DateLayout)
	f.To = end.AddDate(0, 0, -1).Format(domain.DateLayout)

	appointments, err := uc.repo.ListAppointments(ctx, a.ShopID, f)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
