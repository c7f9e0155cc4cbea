package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/dto"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

type ListInput struct {
	BarberID string
	Status   string
}

// filter monta o filtro comum; barbeiro sempre vê só a própria agenda.
func (in ListInput) filter(a actor.Actor) (domain.ListFilter, error) {
	status := domain.Status(in.Status)
	if status != "" && !status.Valid() {
		return domain.ListFilter{}, httperr.ErrBusiness("invalid_status")
	}

	f := domain.ListFilter{BarberID: in.BarberID, Status: status}
	if !a.IsAdmin() {
		f.BarberID = a.UserID
	}
	return f, nil
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	a actor.Actor,
	date string,
	in ListInput,
) ([]dto.AppointmentListDTO, error) {

	if _, ok := domain.ParseDate(date); !ok {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	f, err := in.filter(a)
	if err != nil {
		return nil, err
	}
	f.From, f.To = date, date

	appointments, err := uc.repo.ListAppointments(ctx, a.ShopID, f)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
