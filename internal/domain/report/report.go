package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// Totais derivados de registros já carregados; nada aqui faz I/O.

type Totals struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

func completedIn(haircuts []models.HaircutRecord, start, end time.Time) Totals {
	t := Totals{Revenue: decimal.Zero}
	for _, h := range haircuts {
		if h.Status != string(haircut.StatusCompleted) {
			continue
		}
		if h.CreatedAt.Before(start) || !h.CreatedAt.Before(end) {
			continue
		}
		t.Count++
		t.Revenue = t.Revenue.Add(h.Price)
	}
	return t
}

func DailyTotals(haircuts []models.HaircutRecord, day time.Time) Totals {
	start, end := timezone.DayBounds(day)
	return completedIn(haircuts, start, end)
}

func MonthlyTotals(haircuts []models.HaircutRecord, month time.Time) Totals {
	start, end := timezone.MonthBounds(month)
	return completedIn(haircuts, start, end)
}

// PendingQueue lista os registros aguardando aprovação, mais recentes primeiro.
// Empates mantêm a ordem de entrada.
func PendingQueue(haircuts []models.HaircutRecord) []models.HaircutRecord {
	out := make([]models.HaircutRecord, 0)
	for _, h := range haircuts {
		if h.ApprovalStatus == string(haircut.ApprovalPending) {
			out = append(out, h)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type ExpenseSummary struct {
	TotalMonthly    decimal.Decimal `json:"total_monthly"`
	TotalUnexpected decimal.Decimal `json:"total_unexpected"`
	Total           decimal.Decimal `json:"total"`
	MonthlyCount    int             `json:"monthly_count"`
	UnexpectedCount int             `json:"unexpected_count"`
	AverageMonthly  decimal.Decimal `json:"average_monthly"`
}

// ExpenseTotals soma por tipo. A média mensal é zero quando não há despesas mensais.
func ExpenseTotals(expenses []models.Expense) ExpenseSummary {
	s := ExpenseSummary{
		TotalMonthly:    decimal.Zero,
		TotalUnexpected: decimal.Zero,
		Total:           decimal.Zero,
		AverageMonthly:  decimal.Zero,
	}

	for _, e := range expenses {
		switch e.Type {
		case "monthly":
			s.TotalMonthly = s.TotalMonthly.Add(e.Amount)
			s.MonthlyCount++
		case "unexpected":
			s.TotalUnexpected = s.TotalUnexpected.Add(e.Amount)
			s.UnexpectedCount++
		default:
			continue
		}
		s.Total = s.Total.Add(e.Amount)
	}

	if s.MonthlyCount > 0 {
		s.AverageMonthly = s.TotalMonthly.Div(decimal.NewFromInt(int64(s.MonthlyCount))).Round(2)
	}
	return s
}
