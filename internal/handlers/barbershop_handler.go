package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/account"
)

type BarbershopHandler struct {
	repo   barber.Repository
	update *account.UpdateBarbershop
}

func NewBarbershopHandler(repo barber.Repository, update *account.UpdateBarbershop) *BarbershopHandler {
	return &BarbershopHandler{repo: repo, update: update}
}

type UpdateBarbershopRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	shop, err := h.repo.GetBarbershop(c.Request.Context(), a.ShopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req UpdateBarbershopRequest
	if !bindJSON(c, &req) {
		return
	}

	shop, err := h.update.Execute(c.Request.Context(), a, account.ShopInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, shop)
}
