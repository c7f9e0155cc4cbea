package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/dto"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/middleware"
)

type MeHandler struct {
	repo barber.Repository
}

func NewMeHandler(repo barber.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

// GetMe responde também para contas pendentes: é como o app mostra a tela de espera.
func (h *MeHandler) GetMe(c *gin.Context) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Sessão inválida.")
		return
	}

	shop, err := h.repo.GetBarbershop(c.Request.Context(), u.ShopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user": dto.User(u),
		"barbershop": gin.H{
			"id":       shop.ID,
			"name":     shop.Name,
			"phone":    shop.Phone,
			"address":  shop.Address,
			"timezone": shop.Timezone,
		},
	})
}
