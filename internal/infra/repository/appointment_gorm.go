package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type AppointmentGormRepository struct {
	base
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB, timeout time.Duration) *AppointmentGormRepository {
	return &AppointmentGormRepository{base: newBase(db, timeout)}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment confia no índice único parcial (shop, barber, date, time)
// para os status que ocupam horário: de duas reservas simultâneas, só uma grava.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Create(ap).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrSlotTaken
	}
	return storageErr("create_appointment", err)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	shopID, id string,
) (*models.Appointment, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var ap models.Appointment
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&ap).Error; err != nil {
		return nil, findErr("get_appointment", "appointment_not_found", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	shopID string,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}

	var aps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, storageErr("list_appointments", err)
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) ChangeStatus(
	ctx context.Context,
	ch domain.StatusChange,
) (*models.Appointment, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	return cas(db, "change_appointment_status", "appointment_not_found",
		ch.ShopID, ch.ID,
		map[string]any{"status": string(ch.From)},
		map[string]any{
			"status":     string(ch.To),
			"updated_at": ch.At,
			"updated_by": ch.ActorID,
		},
		func(cur *models.Appointment) error {
			return &httperr.InvalidTransition{Entity: "appointment", From: cur.Status, To: string(ch.To)}
		},
	)
}
