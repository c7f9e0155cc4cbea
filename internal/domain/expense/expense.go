package expense

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type Type string

const (
	TypeMonthly    Type = "monthly"
	TypeUnexpected Type = "unexpected"
)

type Category string

const (
	CategoryUtilities   Category = "utilities"
	CategoryRent        Category = "rent"
	CategorySalary      Category = "salary"
	CategorySupplies    Category = "supplies"
	CategoryMarketing   Category = "marketing"
	CategoryMaintenance Category = "maintenance"
	CategoryUnexpected  Category = "unexpected"
	CategoryOther       Category = "other"
)

var categories = map[Category]struct{}{
	CategoryUtilities:   {},
	CategoryRent:        {},
	CategorySalary:      {},
	CategorySupplies:    {},
	CategoryMarketing:   {},
	CategoryMaintenance: {},
	CategoryUnexpected:  {},
	CategoryOther:       {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

func (t Type) Valid() bool {
	return t == TypeMonthly || t == TypeUnexpected
}

// Validate confere a despesa antes da criação. Despesa não é editada, só removida.
func Validate(e *models.Expense) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Description == "" {
		return httperr.ErrBusiness("description_required")
	}
	if !e.Amount.IsPositive() {
		return httperr.ErrBusiness("invalid_amount")
	}
	if !Type(e.Type).Valid() {
		return httperr.ErrBusiness("invalid_expense_type")
	}
	if e.Category == "" {
		e.Category = string(CategoryOther)
	}
	if !Category(e.Category).Valid() {
		return httperr.ErrBusiness("invalid_category")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

type ListFilter struct {
	Type Type
	// mês no formato YYYY-MM; vazio lista tudo
	Month string
}

type Repository interface {
	Create(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, shopID, id string) error
	List(ctx context.Context, shopID string, f ListFilter) ([]models.Expense, error)
}
