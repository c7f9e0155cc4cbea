package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type AppointmentListDTO struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	BarberID    string          `json:"barber_id"`
	BarberName  string          `json:"barber_name"`
	ClientName  string          `json:"client_name"`
	ClientPhone string          `json:"client_phone"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
}

func AppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			BarberID:    ap.BarberID,
			BarberName:  ap.BarberName,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			ServiceName: ap.ServiceName,
			Price:       ap.Price,
		})
	}
	return out
}
