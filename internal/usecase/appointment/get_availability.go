package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	users barber.Repository
	grid  domain.Grid
}

func NewGetAvailability(repo domain.Repository, users barber.Repository, grid domain.Grid) *GetAvailability {
	return &GetAvailability{repo: repo, users: users, grid: grid}
}

// Execute devolve os slots livres do barbeiro na data (grade menos ocupados).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	shopID, barberID, date string,
) ([]domain.TimeSlot, error) {

	if _, ok := domain.ParseDate(date); !ok {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	b, err := uc.users.GetUser(ctx, shopID, barberID)
	if err != nil {
		return nil, err
	}
	if b.Role == string(actor.RoleBarber) && b.Status != string(barber.StatusActive) {
		return []domain.TimeSlot{}, nil
	}

	existing, err := uc.repo.ListAppointments(ctx, shopID, domain.ListFilter{
		BarberID: barberID,
		From:     date,
		To:       date,
	})
	if err != nil {
		return nil, err
	}

	return uc.grid.TimeSlots(uc.grid.AvailableSlots(barberID, date, existing)), nil
}
