package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *appointment.BookAppointment
	byDate   *appointment.ListAppointmentsByDate
	byMonth  *appointment.ListAppointmentsByMonth
	confirm  *appointment.ConfirmAppointment
	complete *appointment.CompleteAppointment
	cancel   *appointment.CancelAppointment
	payment  *appointment.CreatePaymentLink
}

func NewAppointmentHandler(
	book *appointment.BookAppointment,
	byDate *appointment.ListAppointmentsByDate,
	byMonth *appointment.ListAppointmentsByMonth,
	confirm *appointment.ConfirmAppointment,
	complete *appointment.CompleteAppointment,
	cancel *appointment.CancelAppointment,
	payment *appointment.CreatePaymentLink,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		byDate:   byDate,
		byMonth:  byMonth,
		confirm:  confirm,
		complete: complete,
		cancel:   cancel,
		payment:  payment,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID    string `json:"barber_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Notes       string `json:"notes"`
}

func (r BookAppointmentRequest) input(shopID string) domain.BookingInput {
	return domain.BookingInput{
		ShopID:    shopID,
		BarberID:  r.BarberID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Time:      r.Time,
		Client: domain.Client{
			Name:  r.ClientName,
			Phone: r.ClientPhone,
			Email: r.ClientEmail,
		},
		Notes: r.Notes,
	}
}

func listInput(c *gin.Context) appointment.ListInput {
	return appointment.ListInput{
		BarberID: c.Query("barber_id"),
		Status:   c.Query("status"),
	}
}

// ======================================================
// ROUTES
// ======================================================

// Create é a reserva feita no balcão pela equipe.
func (h *AppointmentHandler) Create(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), req.input(a.ShopID), &a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, ap)
}

// ListByDate GET /appointments?date=YYYY-MM-DD
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	list, err := h.byDate.Execute(c.Request.Context(), a, c.Query("date"), listInput(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ListByMonth GET /appointments/month?month=YYYY-MM
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	list, err := h.byMonth.Execute(c.Request.Context(), a, c.Query("month"), listInput(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

type appointmentTransition func(ctx context.Context, a actor.Actor, id string) (*models.Appointment, error)

func (h *AppointmentHandler) transition(c *gin.Context, run appointmentTransition) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	link, err := h.payment.Execute(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, link)
}
