package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

func TestValidate(t *testing.T) {
	valid := func() *models.Expense {
		return &models.Expense{
			Description: "Aluguel",
			Amount:      decimal.NewFromInt(1500),
			Type:        string(TypeMonthly),
			Date:        "2024-05-01",
		}
	}

	e := valid()
	require.NoError(t, Validate(e))
	assert.Equal(t, string(CategoryOther), e.Category)

	cases := map[string]func(e *models.Expense){
		"description_required": func(e *models.Expense) { e.Description = " " },
		"invalid_amount":       func(e *models.Expense) { e.Amount = decimal.Zero },
		"invalid_expense_type": func(e *models.Expense) { e.Type = "weekly" },
		"invalid_category":     func(e *models.Expense) { e.Category = "party" },
		"invalid_date":         func(e *models.Expense) { e.Date = "01/05/2024" },
	}
	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			e := valid()
			mutate(e)
			assert.True(t, httperr.IsBusiness(Validate(e), code))
		})
	}
}
