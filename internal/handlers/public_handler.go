package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende a página de agendamento do cliente, sem login.
type PublicHandler struct {
	shops        domain.Repository
	barbers      *barber.ListActiveBarbers
	services     *catalog.ListServices
	availability *appointment.GetAvailability
	book         *appointment.BookAppointment
}

func NewPublicHandler(
	shops domain.Repository,
	barbers *barber.ListActiveBarbers,
	services *catalog.ListServices,
	availability *appointment.GetAvailability,
	book *appointment.BookAppointment,
) *PublicHandler {
	return &PublicHandler{
		shops:        shops,
		barbers:      barbers,
		services:     services,
		availability: availability,
		book:         book,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type publicBarber struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type publicBooking struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	BarberName  string `json:"barber_name"`
	ServiceName string `json:"service_name"`
	Price       string `json:"price"`
}

////////////////////////////////////////////////////////
// SHOP
////////////////////////////////////////////////////////

type publicShop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListShops GET /public/shops?search= para o barbeiro achar a loja no cadastro.
func (h *PublicHandler) ListShops(c *gin.Context) {
	shops, err := h.shops.ListBarbershops(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]publicShop, 0, len(shops))
	for _, s := range shops {
		out = append(out, publicShop{ID: s.ID, Name: s.Name})
	}
	httpresp.List(c, out)
}

func (h *PublicHandler) GetShop(c *gin.Context) {
	shop, err := h.shops.GetBarbershop(c.Request.Context(), c.Param("shopID"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":       shop.ID,
		"name":     shop.Name,
		"phone":    shop.Phone,
		"address":  shop.Address,
		"timezone": shop.Timezone,
	})
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	users, err := h.barbers.Execute(c.Request.Context(), c.Param("shopID"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]publicBarber, 0, len(users))
	for _, u := range users {
		out = append(out, publicBarber{ID: u.ID, Name: u.Name})
	}
	httpresp.List(c, out)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.services.Public(c.Request.Context(), c.Param("shopID"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability GET /barbers/:barberID/availability?date=YYYY-MM-DD
func (h *PublicHandler) Availability(c *gin.Context) {
	slots, err := h.availability.Execute(
		c.Request.Context(),
		c.Param("shopID"),
		c.Param("barberID"),
		c.Query("date"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  c.Query("date"),
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), req.input(c.Param("shopID")), nil)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, publicBooking{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		BarberName:  ap.BarberName,
		ServiceName: ap.ServiceName,
		Price:       ap.Price.StringFixed(2),
	})
}
