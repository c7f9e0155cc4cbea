package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/payment"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

var (
	grid        = domain.Grid{OpenHour: 9, CloseHour: 20, SlotMinutes: 30}
	admin       = actor.Actor{UserID: "admin-1", ShopID: "shop-1", Name: "Dono", Role: actor.RoleAdmin}
	barberActor = actor.Actor{UserID: "b1", ShopID: "shop-1", Name: "Zé", Role: actor.RoleBarber}
)

type fixture struct {
	repo    *repository.AppointmentGormRepository
	users   *repository.UserGormRepository
	book    *BookAppointment
	service *models.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	ctx := context.Background()

	f := &fixture{
		repo:  repository.NewAppointmentGormRepository(db, time.Second),
		users: repository.NewUserGormRepository(db, time.Second),
	}
	services := repository.NewCatalogGormRepository(db, time.Second)

	shop := &models.Barbershop{Base: models.Base{ID: "shop-1"}, Name: "Navalha", Timezone: "UTC"}
	owner := &models.User{Base: models.Base{ID: "admin-1"}, Name: "Dono", Email: "d@x.com", Role: "admin", Status: "active"}
	require.NoError(t, f.users.CreateShopWithOwner(ctx, shop, owner))
	for _, u := range []*models.User{
		{Base: models.Base{ID: "b1"}, ShopID: "shop-1", Name: "Zé", Email: "ze@x.com", Role: "barber", Status: "active"},
		{Base: models.Base{ID: "b2"}, ShopID: "shop-1", Name: "Léo", Email: "leo@x.com", Role: "barber", Status: "pending"},
	} {
		require.NoError(t, f.users.CreateUser(ctx, u))
	}

	f.service = &models.Service{ShopID: "shop-1", Name: "Corte", Price: decimal.NewFromInt(40), DurationMin: 30, Active: true}
	require.NoError(t, services.Create(ctx, f.service))

	f.book = NewBookAppointment(f.repo, f.users, services, grid, nil, nil, nil)
	return f
}

func (f *fixture) input(barberID, date, slot string) domain.BookingInput {
	return domain.BookingInput{
		ShopID:    "shop-1",
		BarberID:  barberID,
		ServiceID: f.service.ID,
		Date:      date,
		Time:      slot,
		Client:    domain.Client{Name: "Cliente", Phone: "11999990000"},
	}
}

func TestBookSnapshotsService(t *testing.T) {
	f := setup(t)

	ap, err := f.book.Execute(context.Background(), f.input("b1", "2024-06-01", "10:00"), nil)
	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "Corte", ap.ServiceName)
	assert.Equal(t, "Zé", ap.BarberName)
	assert.True(t, decimal.NewFromInt(40).Equal(ap.Price))
}

func TestBookValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.book.Execute(ctx, f.input("b1", "01/06/2024", "10:00"), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = f.book.Execute(ctx, f.input("b1", "2024-06-01", "10:15"), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))

	_, err = f.book.Execute(ctx, f.input("b1", "2024-06-01", "20:00"), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))

	_, err = f.book.Execute(ctx, f.input("b2", "2024-06-01", "10:00"), nil)
	assert.True(t, httperr.IsBusiness(err, "barber_not_active"))

	in := f.input("b1", "2024-06-01", "10:00")
	in.Client.Phone = " "
	_, err = f.book.Execute(ctx, in, nil)
	assert.True(t, httperr.IsBusiness(err, "client_phone_required"))

	in = f.input("b1", "2024-06-01", "10:00")
	in.ShopID = "shop-2"
	_, err = f.book.Execute(ctx, in, nil)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestAvailabilityExcludesHeldSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, f.input("b1", "2024-06-01", "14:00"), nil)
	require.NoError(t, err)
	_, err = NewConfirmAppointment(f.repo, nil, nil, nil).Execute(ctx, admin, ap.ID)
	require.NoError(t, err)

	avail := NewGetAvailability(f.repo, f.users, grid)
	slots, err := avail.Execute(ctx, "shop-1", "b1", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, slots, 21)
	for _, s := range slots {
		assert.NotEqual(t, "14:00", s.Start)
	}

	// outro dia e outro barbeiro seguem com a grade cheia
	slots, err = avail.Execute(ctx, "shop-1", "b1", "2024-06-02")
	require.NoError(t, err)
	assert.Len(t, slots, 22)

	slots, err = avail.Execute(ctx, "shop-1", "b2", "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestConcurrentBookingOneWinner(t *testing.T) {
	f := setup(t)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.book.Execute(context.Background(), f.input("b1", "2024-06-01", "15:00"), nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, httperr.ErrSlotTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, taken)
}

func TestCancelReleasesSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, f.input("b1", "2024-06-01", "15:00"), nil)
	require.NoError(t, err)

	cancelled, err := NewCancelAppointment(f.repo, nil, nil, nil).Execute(ctx, barberActor, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = f.book.Execute(ctx, f.input("b1", "2024-06-01", "15:00"), nil)
	assert.NoError(t, err)

	_, err = NewConfirmAppointment(f.repo, nil, nil, nil).Execute(ctx, admin, ap.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestAppointmentLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, f.input("b1", "2024-06-01", "09:00"), nil)
	require.NoError(t, err)

	// completar sem confirmar
	_, err = NewCompleteAppointment(f.repo, nil, nil, nil).Execute(ctx, barberActor, ap.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	other := actor.Actor{UserID: "b2", ShopID: "shop-1", Role: actor.RoleBarber}
	_, err = NewConfirmAppointment(f.repo, nil, nil, nil).Execute(ctx, other, ap.ID)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = NewConfirmAppointment(f.repo, nil, nil, nil).Execute(ctx, barberActor, ap.ID)
	require.NoError(t, err)
	done, err := NewCompleteAppointment(f.repo, nil, nil, nil).Execute(ctx, barberActor, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)

	_, err = NewCancelAppointment(f.repo, nil, nil, nil).Execute(ctx, admin, ap.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestListByDateAndMonth(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, in := range []domain.BookingInput{
		f.input("b1", "2024-06-01", "09:00"),
		f.input("b1", "2024-06-30", "10:00"),
		f.input("admin-1", "2024-06-01", "11:00"),
		f.input("b1", "2024-07-01", "09:00"),
	} {
		_, err := f.book.Execute(ctx, in, nil)
		require.NoError(t, err)
	}

	day, err := NewListAppointmentsByDate(f.repo).Execute(ctx, admin, "2024-06-01", ListInput{})
	require.NoError(t, err)
	assert.Len(t, day, 2)

	mine, err := NewListAppointmentsByDate(f.repo).Execute(ctx, barberActor, "2024-06-01", ListInput{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b1", mine[0].BarberID)

	month, err := NewListAppointmentsByMonth(f.repo).Execute(ctx, barberActor, "2024-06", ListInput{})
	require.NoError(t, err)
	assert.Len(t, month, 2)

	_, err = NewListAppointmentsByMonth(f.repo).Execute(ctx, admin, "junho", ListInput{})
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))

	_, err = NewListAppointmentsByDate(f.repo).Execute(ctx, admin, "2024-06-01", ListInput{Status: "lost"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

type fakeLinks struct {
	calls int
}

func (f *fakeLinks) ForAppointment(_ context.Context, ap *models.Appointment) (*payment.Link, error) {
	f.calls++
	return &payment.Link{PreferenceID: "pref-" + ap.ID, URL: "https://pay.test/" + ap.ID}, nil
}

func TestCreatePaymentLink(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	links := &fakeLinks{}

	ap, err := f.book.Execute(ctx, f.input("b1", "2024-06-01", "09:00"), nil)
	require.NoError(t, err)

	link, err := NewCreatePaymentLink(f.repo, links, nil).Execute(ctx, barberActor, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pref-"+ap.ID, link.PreferenceID)

	_, err = NewCancelAppointment(f.repo, nil, nil, nil).Execute(ctx, admin, ap.ID)
	require.NoError(t, err)

	_, err = NewCreatePaymentLink(f.repo, links, nil).Execute(ctx, admin, ap.ID)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.Equal(t, 1, links.calls)

	_, err = NewCreatePaymentLink(f.repo, nil, nil).Execute(ctx, admin, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "payments_disabled"))
}
