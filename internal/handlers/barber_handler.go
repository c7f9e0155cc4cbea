package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/dto"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/barber"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	list    *barber.ListBarbers
	create  *barber.CreateBarber
	approve *barber.ApproveBarber
	reject  *barber.RejectBarber
	toggle  *barber.ToggleBarberActive
}

func NewBarberHandler(
	list *barber.ListBarbers,
	create *barber.CreateBarber,
	approve *barber.ApproveBarber,
	reject *barber.RejectBarber,
	toggle *barber.ToggleBarberActive,
) *BarberHandler {
	return &BarberHandler{
		list:    list,
		create:  create,
		approve: approve,
		reject:  reject,
		toggle:  toggle,
	}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	users, err := h.list.Execute(c.Request.Context(), a, domain.Status(c.Query("status")))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.Users(users))
}

func (h *BarberHandler) Create(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.create.Execute(c.Request.Context(), a, barber.CreateBarberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.User(u))
}

func (h *BarberHandler) Approve(c *gin.Context) {
	h.transition(c, h.approve.Execute)
}

func (h *BarberHandler) Reject(c *gin.Context) {
	h.transition(c, h.reject.Execute)
}

func (h *BarberHandler) Toggle(c *gin.Context) {
	h.transition(c, h.toggle.Execute)
}

type barberTransition func(ctx context.Context, a actor.Actor, id string) (*models.User, error)

func (h *BarberHandler) transition(c *gin.Context, run barberTransition) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	u, err := run(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.User(u))
}
