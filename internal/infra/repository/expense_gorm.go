package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/expense"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type ExpenseGormRepository struct {
	base
}

var _ expense.Repository = (*ExpenseGormRepository)(nil)

func NewExpenseGormRepository(db *gorm.DB, timeout time.Duration) *ExpenseGormRepository {
	return &ExpenseGormRepository{base: newBase(db, timeout)}
}

func (r *ExpenseGormRepository) Create(ctx context.Context, e *models.Expense) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return storageErr("create_expense", db.Create(e).Error)
}

// Delete é a única correção possível de uma despesa.
func (r *ExpenseGormRepository) Delete(ctx context.Context, shopID, id string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Where("id = ? AND shop_id = ?", id, shopID).Delete(&models.Expense{})
	if res.Error != nil {
		return storageErr("delete_expense", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("expense_not_found")
	}
	return nil
}

func (r *ExpenseGormRepository) List(
	ctx context.Context,
	shopID string,
	f expense.ListFilter,
) ([]models.Expense, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}
	if f.Month != "" {
		// date é YYYY-MM-DD; o prefixo do mês basta
		q = q.Where("date LIKE ?", f.Month+"-%")
	}

	var expenses []models.Expense
	if err := q.Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, storageErr("list_expenses", err)
	}
	return expenses, nil
}
