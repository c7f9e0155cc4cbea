package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

var admin = actor.Actor{UserID: "admin-1", ShopID: "shop-1", Name: "Dono", Role: actor.RoleAdmin}

func setup(t *testing.T) (*gorm.DB, *SaveService, *repository.CatalogGormRepository) {
	t.Helper()
	db := dbtest.New(t)
	repo := repository.NewCatalogGormRepository(db, time.Second)
	haircuts := repository.NewHaircutGormRepository(db, time.Second)
	return db, NewSaveService(repo, haircuts, nil, nil), repo
}

func corte() ServiceInput {
	return ServiceInput{Name: "Corte", Price: decimal.NewFromInt(40), DurationMin: 30}
}

func TestCreateAndListServices(t *testing.T) {
	_, save, repo := setup(t)
	ctx := context.Background()

	s, err := save.Create(ctx, admin, corte())
	require.NoError(t, err)
	assert.True(t, s.Active)

	off := false
	in := ServiceInput{Name: "Barba", Price: decimal.NewFromInt(25), DurationMin: 20, Active: &off}
	_, err = save.Create(ctx, admin, in)
	require.NoError(t, err)

	list := NewListServices(repo)
	all, err := list.Execute(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	barber := actor.Actor{UserID: "b1", ShopID: "shop-1", Role: actor.RoleBarber}
	active, err := list.Execute(ctx, barber)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Corte", active[0].Name)

	public, err := list.Public(ctx, "shop-1")
	require.NoError(t, err)
	assert.Len(t, public, 1)
}

func TestServiceValidationAndPermissions(t *testing.T) {
	_, save, _ := setup(t)
	ctx := context.Background()

	_, err := save.Create(ctx, admin, ServiceInput{Name: " ", Price: decimal.NewFromInt(1), DurationMin: 10})
	assert.True(t, httperr.IsBusiness(err, "name_required"))

	_, err = save.Create(ctx, admin, ServiceInput{Name: "x", Price: decimal.NewFromInt(1)})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	barber := actor.Actor{UserID: "b1", ShopID: "shop-1", Role: actor.RoleBarber}
	_, err = save.Create(ctx, barber, corte())
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
}

func TestReferencedServiceKeepsPricing(t *testing.T) {
	db, save, _ := setup(t)
	ctx := context.Background()

	s, err := save.Create(ctx, admin, corte())
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.HaircutRecord{
		ShopID: "shop-1", BarberID: "b1", ServiceID: s.ID, Price: s.Price,
		Status: "pending", ApprovalStatus: "pending",
	}).Error)

	in := corte()
	in.Price = decimal.NewFromInt(50)
	_, err = save.Update(ctx, admin, s.ID, in)
	assert.ErrorIs(t, err, domain.ErrServiceInUse)

	// nome e ativo continuam editáveis
	off := false
	in = corte()
	in.Name = "Corte clássico"
	in.Active = &off
	got, err := save.Update(ctx, admin, s.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Corte clássico", got.Name)
	assert.False(t, got.Active)

	err = save.Delete(ctx, admin, s.ID)
	assert.ErrorIs(t, err, domain.ErrServiceInUse)
}

func TestDeleteUnusedService(t *testing.T) {
	_, save, repo := setup(t)
	ctx := context.Background()

	s, err := save.Create(ctx, admin, corte())
	require.NoError(t, err)

	require.NoError(t, save.Delete(ctx, admin, s.ID))

	_, err = repo.Get(ctx, "shop-1", s.ID)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}
