package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// transitioner aplica um evento da máquina de agendamento com escrita condicional.
// Barbeiro só mexe nos próprios agendamentos; admin em qualquer um da loja.
type transitioner struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Ledger
	clock   timezone.Clock
}

func (t transitioner) apply(
	ctx context.Context,
	a actor.Actor,
	appointmentID string,
	event string,
) (*models.Appointment, error) {

	ap, err := t.repo.GetAppointment(ctx, a.ShopID, appointmentID)
	if err != nil {
		return nil, err
	}
	if !a.IsAdmin() && ap.BarberID != a.UserID {
		return nil, httperr.ErrForbidden("not_your_appointment")
	}

	from := domain.Status(ap.Status)
	to, err := domain.Machine.Apply(event, from)
	if err != nil {
		return nil, err
	}

	updated, err := t.repo.ChangeStatus(ctx, domain.StatusChange{
		ShopID:  a.ShopID,
		ID:      ap.ID,
		From:    from,
		To:      to,
		ActorID: a.UserID,
		At:      t.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	t.metrics.Transition("appointment", string(to))
	t.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	return updated, nil
}
