package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/haircut"
)

type HaircutHandler struct {
	register *haircut.RegisterHaircut
	review   *haircut.Review
	list     *haircut.ListHaircuts
	pending  *haircut.PendingHaircuts
}

func NewHaircutHandler(
	register *haircut.RegisterHaircut,
	review *haircut.Review,
	list *haircut.ListHaircuts,
	pending *haircut.PendingHaircuts,
) *HaircutHandler {
	return &HaircutHandler{register: register, review: review, list: list, pending: pending}
}

type RegisterHaircutRequest struct {
	BarberID      string `json:"barber_id"`
	ServiceID     string `json:"service_id" binding:"required"`
	ClientName    string `json:"client_name"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *HaircutHandler) Register(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req RegisterHaircutRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.register.Execute(c.Request.Context(), a, haircut.RegisterInput{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		ClientName:    req.ClientName,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, rec)
}

// List aceita ?barber_id=&approval=&from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *HaircutHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), a, haircut.ListInput{
		BarberID: c.Query("barber_id"),
		Approval: c.Query("approval"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *HaircutHandler) Pending(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	list, err := h.pending.Execute(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *HaircutHandler) Approve(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	rec, err := h.review.Approve(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rec)
}

func (h *HaircutHandler) Reject(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	rec, err := h.review.Reject(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rec)
}
