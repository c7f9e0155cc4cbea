package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/expense"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/expense"
)

type ExpenseHandler struct {
	create *expense.CreateExpense
	remove *expense.DeleteExpense
	list   *expense.ListExpenses
}

func NewExpenseHandler(
	create *expense.CreateExpense,
	remove *expense.DeleteExpense,
	list *expense.ListExpenses,
) *ExpenseHandler {
	return &ExpenseHandler{create: create, remove: remove, list: list}
}

type ExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category"`
	Date        string          `json:"date" binding:"required"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.create.Execute(c.Request.Context(), a, expense.Input{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, e)
}

// List GET /expenses?type=monthly|unexpected&month=YYYY-MM
func (h *ExpenseHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	res, err := h.list.Execute(c.Request.Context(), a, domain.ListFilter{
		Type:  domain.Type(c.Query("type")),
		Month: c.Query("month"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), a, c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
