package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type ConfirmAppointment struct {
	t transitioner
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *ConfirmAppointment {
	return &ConfirmAppointment{t: transitioner{repo, audit, metrics, clock}}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, a actor.Actor, appointmentID string) (*models.Appointment, error) {
	return uc.t.apply(ctx, a, appointmentID, domain.EventConfirm)
}
