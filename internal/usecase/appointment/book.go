package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	users    barber.Repository
	services catalog.Repository
	grid     domain.Grid
	audit    *audit.Dispatcher
	metrics  *metrics.Ledger
	clock    timezone.Clock
}

func NewBookAppointment(
	repo domain.Repository,
	users barber.Repository,
	services catalog.Repository,
	grid domain.Grid,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		users:    users,
		services: services,
		grid:     grid,
		audit:    audit,
		metrics:  metrics,
		clock:    clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute atende o cliente na página pública e o balcão; by é vazio no primeiro caso.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in domain.BookingInput,
	by *actor.Actor,
) (*models.Appointment, error) {

	ap, err := uc.book(ctx, in)
	switch {
	case err == nil:
		uc.metrics.Booking(metrics.OutcomeOK)
	case httperr.IsDomain(err):
		uc.metrics.Booking(metrics.OutcomeRejected)
		return nil, err
	default:
		uc.metrics.Booking(metrics.OutcomeError)
		return nil, err
	}

	ev := audit.Event{
		ShopID:   ap.ShopID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time, "barber_id": ap.BarberID},
	}
	if by != nil {
		ev.UserID = by.UserID
	}
	uc.audit.Dispatch(ev)

	return ap, nil
}

func (uc *BookAppointment) book(ctx context.Context, in domain.BookingInput) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data, slot e cliente
	// --------------------------------------------------
	if err := uc.grid.ValidateBooking(&in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Barbeiro ativo na loja
	// --------------------------------------------------
	b, err := uc.users.GetUser(ctx, in.ShopID, in.BarberID)
	if err != nil {
		return nil, err
	}
	if b.Role != string(actor.RoleBarber) && b.Role != string(actor.RoleAdmin) {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	if b.Status != string(barber.StatusActive) {
		return nil, httperr.ErrBusiness("barber_not_active")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço (preço congelado no agendamento)
	// --------------------------------------------------
	svc, err := uc.services.Get(ctx, in.ShopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	ap, err := domain.NewAppointment(in, b, svc, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Gravação: o índice único decide entre reservas simultâneas
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
