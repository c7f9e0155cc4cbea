package haircut

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

type fixture struct {
	users    *repository.UserGormRepository
	services *repository.CatalogGormRepository
	haircuts *repository.HaircutGormRepository
	admin    actor.Actor
	barber   actor.Actor
	service  *models.Service
	now      time.Time
}

func (f *fixture) clock() timezone.Clock {
	return func() time.Time { return f.now }
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	ctx := context.Background()

	f := &fixture{
		users:    repository.NewUserGormRepository(db, time.Second),
		services: repository.NewCatalogGormRepository(db, time.Second),
		haircuts: repository.NewHaircutGormRepository(db, time.Second),
		admin:    actor.Actor{UserID: "admin-1", ShopID: "shop-1", Name: "Dono", Role: actor.RoleAdmin},
		barber:   actor.Actor{UserID: "b1", ShopID: "shop-1", Name: "Zé", Role: actor.RoleBarber},
		now:      time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	shop := &models.Barbershop{Base: models.Base{ID: "shop-1"}, Name: "Navalha", Timezone: "UTC"}
	owner := &models.User{Base: models.Base{ID: "admin-1"}, Name: "Dono", Email: "d@x.com", Role: "admin", Status: "active"}
	require.NoError(t, f.users.CreateShopWithOwner(ctx, shop, owner))
	require.NoError(t, f.users.CreateUser(ctx, &models.User{
		Base: models.Base{ID: "b1"}, ShopID: "shop-1", Name: "Zé", Email: "ze@x.com", Role: "barber", Status: "active",
	}))

	f.service = &models.Service{ShopID: "shop-1", Name: "Corte", Price: decimal.NewFromInt(40), DurationMin: 30, Active: true}
	require.NoError(t, f.services.Create(ctx, f.service))
	return f
}

func (f *fixture) register(t *testing.T, a actor.Actor) *models.HaircutRecord {
	t.Helper()
	uc := NewRegisterHaircut(f.users, f.services, f.haircuts, nil, f.clock())
	rec, err := uc.Execute(context.Background(), a, RegisterInput{
		ServiceID:     f.service.ID,
		ClientName:    "Cliente",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	return rec
}

func TestBarberRecordWaitsForApproval(t *testing.T) {
	f := setup(t)
	rec := f.register(t, f.barber)

	assert.Equal(t, "pending", rec.Status)
	assert.Equal(t, "pending", rec.ApprovalStatus)
	assert.Equal(t, "b1", rec.BarberID)
	assert.Equal(t, "Corte", rec.ServiceName)
	assert.True(t, decimal.NewFromInt(40).Equal(rec.Price))
}

func TestAdminRecordIsCompleted(t *testing.T) {
	f := setup(t)
	uc := NewRegisterHaircut(f.users, f.services, f.haircuts, nil, f.clock())

	rec, err := uc.Execute(context.Background(), f.admin, RegisterInput{
		BarberID:      "b1",
		ServiceID:     f.service.ID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", rec.Status)
	assert.Equal(t, "approved", rec.ApprovalStatus)
	assert.Equal(t, "b1", rec.BarberID)
	assert.Equal(t, "admin-1", rec.ApprovedBy)
}

func TestRejectThenApproveIsInvalid(t *testing.T) {
	f := setup(t)
	rec := f.register(t, f.barber)
	review := NewReview(f.haircuts, nil, nil, f.clock())
	ctx := context.Background()

	got, err := review.Reject(ctx, f.admin, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
	assert.Equal(t, "rejected", got.ApprovalStatus)

	_, err = review.Approve(ctx, f.admin, rec.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestApproveStampsApprover(t *testing.T) {
	f := setup(t)
	rec := f.register(t, f.barber)

	got, err := NewReview(f.haircuts, nil, nil, f.clock()).Approve(context.Background(), f.admin, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "approved", got.ApprovalStatus)
	assert.Equal(t, "Dono", got.ApprovedByName)
	require.NotNil(t, got.ApprovedAt)
}

func TestBarberCannotReview(t *testing.T) {
	f := setup(t)
	rec := f.register(t, f.barber)

	_, err := NewReview(f.haircuts, nil, nil, f.clock()).Approve(context.Background(), f.barber, rec.ID)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
}

func TestRegisterRejectsInactiveService(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.service.Active = false
	require.NoError(t, f.services.Update(ctx, f.service, false))

	_, err := NewRegisterHaircut(f.users, f.services, f.haircuts, nil, f.clock()).Execute(ctx, f.barber, RegisterInput{
		ServiceID:     f.service.ID,
		PaymentMethod: "cash",
	})
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestPendingQueueNewestFirst(t *testing.T) {
	f := setup(t)
	first := f.register(t, f.barber)
	f.now = f.now.Add(time.Hour)
	second := f.register(t, f.barber)
	f.now = f.now.Add(time.Hour)
	f.register(t, f.admin)

	queue, err := NewPendingHaircuts(f.haircuts).Execute(context.Background(), f.admin)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, second.ID, queue[0].ID)
	assert.Equal(t, first.ID, queue[1].ID)
}

func TestBarberListsOnlyOwnRecords(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.users.CreateUser(ctx, &models.User{
		Base: models.Base{ID: "b2"}, ShopID: "shop-1", Name: "Léo", Email: "leo@x.com", Role: "barber", Status: "active",
	}))
	f.register(t, f.barber)
	f.register(t, actor.Actor{UserID: "b2", ShopID: "shop-1", Role: actor.RoleBarber})

	mine, err := NewListHaircuts(f.haircuts, f.users).Execute(ctx, f.barber, ListInput{BarberID: "b2"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b1", mine[0].BarberID)

	all, err := NewListHaircuts(f.haircuts, f.users).Execute(ctx, f.admin, ListInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListByDayRange(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.register(t, f.barber)
	f.now = f.now.AddDate(0, 0, 2)
	f.register(t, f.barber)

	list := NewListHaircuts(f.haircuts, f.users)

	day, err := list.Execute(ctx, f.admin, ListInput{From: "2024-05-10", To: "2024-05-10"})
	require.NoError(t, err)
	assert.Len(t, day, 1)

	open, err := list.Execute(ctx, f.admin, ListInput{From: "2024-05-11"})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = list.Execute(ctx, f.admin, ListInput{From: "10/05"})
	assert.True(t, httperr.IsBusiness(err, "invalid_from"))
}
