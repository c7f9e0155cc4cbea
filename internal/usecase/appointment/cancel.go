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

type CancelAppointment struct {
	t transitioner
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{t: transitioner{repo, audit, metrics, clock}}
}

// Execute libera o horário: o slot volta a aparecer na disponibilidade.
func (uc *CancelAppointment) Execute(ctx context.Context, a actor.Actor, appointmentID string) (*models.Appointment, error) {
	return uc.t.apply(ctx, a, appointmentID, domain.EventCancel)
}
