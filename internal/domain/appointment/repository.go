package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type ListFilter struct {
	BarberID string
	Status   Status
	// intervalo fechado de datas YYYY-MM-DD
	From string
	To   string
}

// StatusChange só aplica se o status atual ainda for From.
type StatusChange struct {
	ShopID  string
	ID      string
	From    Status
	To      Status
	ActorID string
	At      time.Time
}

type Repository interface {
	// CreateAppointment devolve ErrSlotTaken quando o índice único do horário é violado.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, shopID, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, shopID string, f ListFilter) ([]models.Appointment, error)

	ChangeStatus(ctx context.Context, ch StatusChange) (*models.Appointment, error)
}
