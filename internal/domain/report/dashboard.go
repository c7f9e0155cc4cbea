package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type AdminDashboard struct {
	ActiveBarbers    int    `json:"active_barbers"`
	PendingBarbers   int    `json:"pending_barbers"`
	Today            Totals `json:"today"`
	Month            Totals `json:"month"`
	PendingApprovals int    `json:"pending_approvals"`
}

// BuildAdminDashboard conta só barbeiros; o admin não entra nos totais de equipe.
func BuildAdminDashboard(users []models.User, haircuts []models.HaircutRecord, now time.Time) AdminDashboard {
	d := AdminDashboard{
		Today:            DailyTotals(haircuts, now),
		Month:            MonthlyTotals(haircuts, now),
		PendingApprovals: len(PendingQueue(haircuts)),
	}

	for _, u := range users {
		if u.Role != "barber" {
			continue
		}
		switch u.Status {
		case "active":
			d.ActiveBarbers++
		case "pending":
			d.PendingBarbers++
		}
	}
	return d
}

type BarberEarnings struct {
	BarberID  string `json:"barber_id"`
	Pending   Totals `json:"pending"`
	Completed Totals `json:"completed"`
	Today     Totals `json:"today"`
	Month     Totals `json:"month"`
}

// BuildBarberEarnings separa o que o barbeiro já teve aprovado do que ainda espera aprovação.
func BuildBarberEarnings(haircuts []models.HaircutRecord, barberID string, now time.Time) BarberEarnings {
	mine := make([]models.HaircutRecord, 0)
	for _, h := range haircuts {
		if h.BarberID == barberID {
			mine = append(mine, h)
		}
	}

	e := BarberEarnings{
		BarberID:  barberID,
		Pending:   Totals{Revenue: decimal.Zero},
		Completed: Totals{Revenue: decimal.Zero},
		Today:     DailyTotals(mine, now),
		Month:     MonthlyTotals(mine, now),
	}

	for _, h := range mine {
		switch haircut.Status(h.Status) {
		case haircut.StatusPending:
			e.Pending.Count++
			e.Pending.Revenue = e.Pending.Revenue.Add(h.Price)
		case haircut.StatusCompleted:
			e.Completed.Count++
			e.Completed.Revenue = e.Completed.Revenue.Add(h.Price)
		}
	}
	return e
}
