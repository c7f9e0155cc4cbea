package expense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/expense"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/report"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type Input struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Date        string
}

type CreateExpense struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCreateExpense(repo domain.Repository, audit *audit.Dispatcher, clock timezone.Clock) *CreateExpense {
	return &CreateExpense{repo: repo, audit: audit, clock: clock}
}

func (uc *CreateExpense) Execute(ctx context.Context, a actor.Actor, in Input) (*models.Expense, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	e := &models.Expense{
		ShopID:        a.ShopID,
		Description:   in.Description,
		Amount:        in.Amount,
		Type:          in.Type,
		Category:      in.Category,
		Date:          in.Date,
		CreatedBy:     a.UserID,
		CreatedByName: a.Name,
		CreatedAt:     uc.clock.Now(),
	}
	if err := domain.Validate(e); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "expense_created",
		Entity:   "expense",
		EntityID: e.ID,
	})
	return e, nil
}

type DeleteExpense struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteExpense(repo domain.Repository, audit *audit.Dispatcher) *DeleteExpense {
	return &DeleteExpense{repo: repo, audit: audit}
}

func (uc *DeleteExpense) Execute(ctx context.Context, a actor.Actor, id string) error {
	if err := a.RequireAdmin(); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, a.ShopID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "expense_deleted",
		Entity:   "expense",
		EntityID: id,
	})
	return nil
}

// ===============================
// ListExpenses
// ===============================

type ListResult struct {
	Expenses []models.Expense      `json:"expenses"`
	Summary  report.ExpenseSummary `json:"summary"`
}

type ListExpenses struct {
	repo domain.Repository
}

func NewListExpenses(repo domain.Repository) *ListExpenses {
	return &ListExpenses{repo: repo}
}

// Execute lista com os totais por tipo calculados sobre o mesmo recorte.
func (uc *ListExpenses) Execute(ctx context.Context, a actor.Actor, f domain.ListFilter) (*ListResult, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, httperr.ErrBusiness("invalid_expense_type")
	}
	if f.Month != "" {
		if _, ok := timezone.ParseMonth(f.Month, "UTC"); !ok {
			return nil, httperr.ErrBusiness("invalid_month")
		}
	}

	list, err := uc.repo.List(ctx, a.ShopID, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{Expenses: list, Summary: report.ExpenseTotals(list)}, nil
}
