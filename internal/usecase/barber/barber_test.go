package barber

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func clock() timezone.Clock {
	return func() time.Time { return fixedNow }
}

type fixture struct {
	db    *gorm.DB
	repo  *repository.UserGormRepository
	admin actor.Actor
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.New(t)
	repo := repository.NewUserGormRepository(db, time.Second)

	shop := &models.Barbershop{Base: models.Base{ID: "shop-1"}, Name: "Navalha", OwnerID: "admin-1", Timezone: "UTC"}
	owner := &models.User{Base: models.Base{ID: "admin-1"}, Name: "Dono", Email: "dono@x.com", Role: "admin", Status: "active"}
	require.NoError(t, repo.CreateShopWithOwner(context.Background(), shop, owner))

	return fixture{
		db:    db,
		repo:  repo,
		admin: actor.Actor{UserID: "admin-1", ShopID: "shop-1", Name: "Dono", Role: actor.RoleAdmin},
	}
}

func (f fixture) barber(t *testing.T, id string, status domain.Status) *models.User {
	t.Helper()
	u := &models.User{
		Base:   models.Base{ID: id},
		ShopID: "shop-1",
		Name:   "Barbeiro " + id,
		Email:  id + "@x.com",
		Role:   "barber",
		Status: string(status),
	}
	require.NoError(t, f.repo.CreateUser(context.Background(), u))
	return u
}

func TestApproveBarber(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusPending)
	uc := NewApproveBarber(f.repo, nil, nil, clock())

	u, err := uc.Execute(context.Background(), f.admin, "b1")
	require.NoError(t, err)
	assert.Equal(t, "active", u.Status)
	require.NotNil(t, u.ApprovedAt)
	assert.Equal(t, "admin-1", u.ApprovedBy)

	// aprovar de novo: transição inválida
	_, err = uc.Execute(context.Background(), f.admin, "b1")
	var it *httperr.InvalidTransition
	require.True(t, errors.As(err, &it))
	assert.Equal(t, "active", it.From)
}

func TestRejectedBarberIsTerminal(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusPending)
	ctx := context.Background()

	u, err := NewRejectBarber(f.repo, nil, nil, clock()).Execute(ctx, f.admin, "b1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", u.Status)

	_, err = NewApproveBarber(f.repo, nil, nil, clock()).Execute(ctx, f.admin, "b1")
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	_, err = NewToggleBarberActive(f.repo, nil, nil, clock()).Execute(ctx, f.admin, "b1")
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestToggleBarberActive(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusActive)
	uc := NewToggleBarberActive(f.repo, nil, nil, clock())
	ctx := context.Background()

	u, err := uc.Execute(ctx, f.admin, "b1")
	require.NoError(t, err)
	assert.Equal(t, "inactive", u.Status)

	u, err = uc.Execute(ctx, f.admin, "b1")
	require.NoError(t, err)
	assert.Equal(t, "active", u.Status)
}

func TestBarberTransitionsRequireAdmin(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusActive)
	f.barber(t, "b2", domain.StatusPending)

	self := actor.Actor{UserID: "b1", ShopID: "shop-1", Role: actor.RoleBarber}
	_, err := NewApproveBarber(f.repo, nil, nil, clock()).Execute(context.Background(), self, "b2")
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	// o admin não é alvo das transições de barbeiro
	_, err = NewToggleBarberActive(f.repo, nil, nil, clock()).Execute(context.Background(), f.admin, "admin-1")
	assert.True(t, httperr.IsBusiness(err, "not_a_barber"))
}

func TestBarberFromAnotherShopIsNotFound(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusPending)

	other := actor.Actor{UserID: "x", ShopID: "shop-2", Role: actor.RoleAdmin}
	_, err := NewApproveBarber(f.repo, nil, nil, clock()).Execute(context.Background(), other, "b1")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestListBarbers(t *testing.T) {
	f := setup(t)
	f.barber(t, "b1", domain.StatusActive)
	f.barber(t, "b2", domain.StatusPending)
	uc := NewListBarbers(f.repo)
	ctx := context.Background()

	all, err := uc.Execute(ctx, f.admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.Execute(ctx, f.admin, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b2", pending[0].ID)

	// barbeiro só enxerga colegas ativos
	colleague := actor.Actor{UserID: "b1", ShopID: "shop-1", Role: actor.RoleBarber}
	visible, err := uc.Execute(ctx, colleague, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "b1", visible[0].ID)

	_, err = uc.Execute(ctx, f.admin, "banned")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCreateBarberWithSecondarySession(t *testing.T) {
	f := setup(t)
	provider := auth.NewLocalProvider(f.db, auth.NewTokenManager("secret", time.Hour), auth.NewMemorySessions(), 6, time.Second)
	ctx := context.Background()

	// sessão do admin, que precisa continuar válida
	_, err := provider.SignUp(ctx, "dono@x.com", "secret1")
	require.NoError(t, err)
	adminSession, err := provider.SignIn(ctx, "dono@x.com", "secret1")
	require.NoError(t, err)

	uc := NewCreateBarber(f.repo, provider, nil, nil, clock())
	u, err := uc.Execute(ctx, f.admin, CreateBarberInput{
		Name:     " Novo ",
		Email:    "Novo@X.com",
		Password: "segredo",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", u.Status)
	assert.Equal(t, "barber", u.Role)
	assert.Equal(t, "Navalha", u.ShopName)
	assert.Equal(t, "Novo", u.Name)
	assert.Equal(t, "novo@x.com", u.Email)

	stored, err := f.repo.GetUser(ctx, "shop-1", u.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", stored.Status)

	_, err = provider.Verify(ctx, adminSession.Token)
	assert.NoError(t, err)

	// o barbeiro consegue entrar com a própria senha
	s, err := provider.SignIn(ctx, "novo@x.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, u.ID, s.AccountID)
}

func TestCreateBarberValidation(t *testing.T) {
	f := setup(t)
	provider := auth.NewLocalProvider(f.db, auth.NewTokenManager("secret", time.Hour), auth.NewMemorySessions(), 6, time.Second)
	uc := NewCreateBarber(f.repo, provider, nil, nil, clock())

	_, err := uc.Execute(context.Background(), f.admin, CreateBarberInput{Name: "x", Email: "not-an-email", Password: "segredo"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	_, err = uc.Execute(context.Background(), f.admin, CreateBarberInput{Name: "x", Email: "a@x.com", Password: "123"})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	var count int64
	require.NoError(t, f.db.Model(&models.Credential{}).Count(&count).Error)
	assert.Zero(t, count)
}
