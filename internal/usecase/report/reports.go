package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/report"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// Os relatórios carregam os registros e delegam o cálculo às funções puras do domínio.
// "Hoje" e "mês" seguem o fuso da loja.

type Dashboard struct {
	users    barber.Repository
	haircuts haircut.Repository
	clock    timezone.Clock
}

func NewDashboard(users barber.Repository, haircuts haircut.Repository, clock timezone.Clock) *Dashboard {
	return &Dashboard{users: users, haircuts: haircuts, clock: clock}
}

func (uc *Dashboard) Execute(ctx context.Context, a actor.Actor) (*domain.AdminDashboard, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	shop, err := uc.users.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.ListUsers(ctx, a.ShopID, barber.ListFilter{Role: string(actor.RoleBarber)})
	if err != nil {
		return nil, err
	}
	haircuts, err := uc.haircuts.List(ctx, a.ShopID, haircut.ListFilter{})
	if err != nil {
		return nil, err
	}

	d := domain.BuildAdminDashboard(users, haircuts, uc.clock.In(shop.Timezone))
	return &d, nil
}

type Earnings struct {
	users    barber.Repository
	haircuts haircut.Repository
	clock    timezone.Clock
}

func NewEarnings(users barber.Repository, haircuts haircut.Repository, clock timezone.Clock) *Earnings {
	return &Earnings{users: users, haircuts: haircuts, clock: clock}
}

// Execute: barbeiro consulta só os próprios ganhos; admin escolhe o barbeiro.
func (uc *Earnings) Execute(ctx context.Context, a actor.Actor, barberID string) (*domain.BarberEarnings, error) {
	if !a.IsAdmin() || barberID == "" {
		barberID = a.UserID
	}

	shop, err := uc.users.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.users.GetUser(ctx, a.ShopID, barberID); err != nil {
		return nil, err
	}

	haircuts, err := uc.haircuts.List(ctx, a.ShopID, haircut.ListFilter{BarberID: barberID})
	if err != nil {
		return nil, err
	}

	e := domain.BuildBarberEarnings(haircuts, barberID, uc.clock.In(shop.Timezone))
	return &e, nil
}

type PeriodTotals struct {
	Day     string        `json:"day"`
	Month   string        `json:"month"`
	Daily   domain.Totals `json:"daily"`
	Monthly domain.Totals `json:"monthly"`
}

type Revenue struct {
	users    barber.Repository
	haircuts haircut.Repository
	clock    timezone.Clock
}

func NewRevenue(users barber.Repository, haircuts haircut.Repository, clock timezone.Clock) *Revenue {
	return &Revenue{users: users, haircuts: haircuts, clock: clock}
}

// Execute soma os cortes concluídos do dia (YYYY-MM-DD) e do mês desse dia.
// Dia vazio vale hoje.
func (uc *Revenue) Execute(ctx context.Context, a actor.Actor, day string) (*PeriodTotals, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	shop, err := uc.users.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	ref := uc.clock.In(shop.Timezone)
	if day != "" {
		t, err := time.ParseInLocation("2006-01-02", day, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ref = t
	}

	start, end := timezone.MonthBounds(ref)
	haircuts, err := uc.haircuts.List(ctx, a.ShopID, haircut.ListFilter{From: start, To: end})
	if err != nil {
		return nil, err
	}

	return &PeriodTotals{
		Day:     ref.Format("2006-01-02"),
		Month:   ref.Format("2006-01"),
		Daily:   domain.DailyTotals(haircuts, ref),
		Monthly: domain.MonthlyTotals(haircuts, ref),
	}, nil
}
