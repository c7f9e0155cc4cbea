package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// transitioner aplica um evento da máquina de conta e grava de forma condicional.
type transitioner struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Ledger
	clock   timezone.Clock
}

func (t transitioner) apply(
	ctx context.Context,
	a actor.Actor,
	barberID string,
	eventFor func(current domain.Status) string,
	action string,
) (*models.User, error) {

	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	u, err := t.repo.GetUser(ctx, a.ShopID, barberID)
	if err != nil {
		return nil, err
	}
	if u.Role != string(actor.RoleBarber) {
		return nil, httperr.ErrForbidden("not_a_barber")
	}

	from := domain.Status(u.Status)
	event := eventFor(from)

	to, err := domain.Machine.Apply(event, from)
	if err != nil {
		return nil, err
	}

	updated, err := t.repo.ChangeStatus(ctx, domain.StatusChange{
		ShopID:   a.ShopID,
		UserID:   u.ID,
		From:     from,
		To:       to,
		ActorID:  a.UserID,
		At:       t.clock.Now(),
		Approval: event == domain.EventApprove,
	})
	if err != nil {
		return nil, err
	}

	t.metrics.Transition("barber", string(to))
	t.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   action,
		Entity:   "barber",
		EntityID: u.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	return updated, nil
}

// ===============================
// approve / reject / toggleActive
// ===============================

type ApproveBarber struct{ t transitioner }

func NewApproveBarber(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *ApproveBarber {
	return &ApproveBarber{t: transitioner{repo, audit, metrics, clock}}
}

func (uc *ApproveBarber) Execute(ctx context.Context, a actor.Actor, barberID string) (*models.User, error) {
	return uc.t.apply(ctx, a, barberID,
		func(domain.Status) string { return domain.EventApprove },
		"barber_approved",
	)
}

type RejectBarber struct{ t transitioner }

func NewRejectBarber(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *RejectBarber {
	return &RejectBarber{t: transitioner{repo, audit, metrics, clock}}
}

func (uc *RejectBarber) Execute(ctx context.Context, a actor.Actor, barberID string) (*models.User, error) {
	return uc.t.apply(ctx, a, barberID,
		func(domain.Status) string { return domain.EventReject },
		"barber_rejected",
	)
}

type ToggleBarberActive struct{ t transitioner }

func NewToggleBarberActive(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *ToggleBarberActive {
	return &ToggleBarberActive{t: transitioner{repo, audit, metrics, clock}}
}

func (uc *ToggleBarberActive) Execute(ctx context.Context, a actor.Actor, barberID string) (*models.User, error) {
	return uc.t.apply(ctx, a, barberID, domain.ToggleEvent, "barber_toggled")
}
