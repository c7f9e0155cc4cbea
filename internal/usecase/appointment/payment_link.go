package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/payment"
)

// CreatePaymentLink gera o checkout do Mercado Pago para um agendamento em aberto.
type CreatePaymentLink struct {
	repo  domain.Repository
	links payment.Links
	audit *audit.Dispatcher
}

func NewCreatePaymentLink(
	repo domain.Repository,
	links payment.Links,
	audit *audit.Dispatcher,
) *CreatePaymentLink {
	return &CreatePaymentLink{repo: repo, links: links, audit: audit}
}

func (uc *CreatePaymentLink) Execute(
	ctx context.Context,
	a actor.Actor,
	appointmentID string,
) (*payment.Link, error) {

	if uc.links == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	ap, err := uc.repo.GetAppointment(ctx, a.ShopID, appointmentID)
	if err != nil {
		return nil, err
	}
	if !a.IsAdmin() && ap.BarberID != a.UserID {
		return nil, httperr.ErrForbidden("not_your_appointment")
	}
	if !domain.Status(ap.Status).HoldsSlot() {
		return nil, httperr.ErrConflict("appointment_closed")
	}

	link, err := uc.links.ForAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "payment_link_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"preference_id": link.PreferenceID},
	})

	return link, nil
}
