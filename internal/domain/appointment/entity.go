package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// ===============================
// Booking
// ===============================

type Client struct {
	Name  string
	Phone string
	Email string
}

type BookingInput struct {
	ShopID    string
	BarberID  string
	ServiceID string
	Date      string
	Time      string
	Client    Client
	Notes     string
}

// ValidateBooking confere o formato da data, o slot na grade e o cliente.
func (g Grid) ValidateBooking(in *BookingInput) error {
	in.Client.Name = strings.TrimSpace(in.Client.Name)
	in.Client.Phone = strings.TrimSpace(in.Client.Phone)
	in.Client.Email = strings.TrimSpace(in.Client.Email)

	if _, ok := ParseDate(in.Date); !ok {
		return httperr.ErrBusiness("invalid_date")
	}
	if !g.Contains(in.Time) {
		return httperr.ErrBusiness("invalid_slot")
	}
	if in.Client.Name == "" {
		return httperr.ErrBusiness("client_name_required")
	}
	if in.Client.Phone == "" {
		return httperr.ErrBusiness("client_phone_required")
	}
	return nil
}

// NewAppointment monta o agendamento pendente com nome e preço do serviço congelados.
func NewAppointment(
	in BookingInput,
	barber *models.User,
	svc *models.Service,
	now time.Time,
) (*models.Appointment, error) {

	if barber.ShopID != in.ShopID || svc.ShopID != in.ShopID {
		return nil, httperr.ErrNotFound("not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	return &models.Appointment{
		ShopID:      in.ShopID,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
		ClientName:  in.Client.Name,
		ClientPhone: in.Client.Phone,
		ClientEmail: in.Client.Email,
		Notes:       strings.TrimSpace(in.Notes),
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(InitialStatus()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
