package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/catalog"
)

type ServiceHandler struct {
	list *catalog.ListServices
	save *catalog.SaveService
}

func NewServiceHandler(list *catalog.ListServices, save *catalog.SaveService) *ServiceHandler {
	return &ServiceHandler{list: list, save: save}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DurationMin int             `json:"duration_min" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Active      *bool           `json:"active,omitempty"`
}

func (r ServiceRequest) input() catalog.ServiceInput {
	return catalog.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		DurationMin: r.DurationMin,
		Active:      r.Active,
	}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	services, err := h.list.Execute(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.save.Create(c.Request.Context(), a, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.save.Update(c.Request.Context(), a, c.Param("id"), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.save.Delete(c.Request.Context(), a, c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
