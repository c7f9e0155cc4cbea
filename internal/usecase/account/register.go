package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
	"github.com/BruksfildServices01/barbershop-manager/internal/validators"
)

// Registration é o retorno dos cadastros: perfil criado e sessão já aberta.
type Registration struct {
	User    *models.User
	Shop    *models.Barbershop
	Session *auth.Session
}

// Options controla checagens opcionais de cadastro.
type Options struct {
	CheckEmailDomains bool
	DefaultTimezone   string
}

func checkEmail(ctx context.Context, opts Options, email string) error {
	if opts.CheckEmailDomains && !validators.EmailDomainResolves(ctx, email) {
		return httperr.ErrBusiness("invalid_email_domain")
	}
	return nil
}

// rollback remove a conta quando o perfil não pôde ser gravado.
func rollback(ctx context.Context, p auth.Provider, accountID string, cause error) error {
	d, ok := p.(auth.AccountDeleter)
	if !ok {
		return cause
	}
	return errors.Join(cause, d.DeleteAccount(context.WithoutCancel(ctx), accountID))
}

// ===============================
// RegisterAdmin
// ===============================

type RegisterAdminInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Phone    string
	ShopName string `validate:"required"`
	Address  string
	Timezone string
}

// RegisterAdmin cria a conta, a barbearia e o perfil do dono. O ID da loja
// é o mesmo da conta do dono.
type RegisterAdmin struct {
	repo     barber.Repository
	provider auth.Provider
	audit    *audit.Dispatcher
	clock    timezone.Clock
	opts     Options
}

func NewRegisterAdmin(
	repo barber.Repository,
	provider auth.Provider,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	opts Options,
) *RegisterAdmin {
	return &RegisterAdmin{repo: repo, provider: provider, audit: audit, clock: clock, opts: opts}
}

func (uc *RegisterAdmin) Execute(ctx context.Context, in RegisterAdminInput) (*Registration, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := checkEmail(ctx, uc.opts, in.Email); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = uc.opts.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	accountID, err := uc.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	shop := &models.Barbershop{
		Base:      models.Base{ID: accountID},
		Name:      strings.TrimSpace(in.ShopName),
		OwnerID:   accountID,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Timezone:  tz,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &models.User{
		Base:      models.Base{ID: accountID},
		ShopID:    shop.ID,
		ShopName:  shop.Name,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      string(actor.RoleAdmin),
		Status:    string(barber.InitialStatus(actor.RoleAdmin, false)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateShopWithOwner(ctx, shop, owner); err != nil {
		return nil, rollback(ctx, uc.provider, accountID, err)
	}

	session, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   owner.ID,
		Action:   "shop_registered",
		Entity:   "barbershop",
		EntityID: shop.ID,
	})

	return &Registration{User: owner, Shop: shop, Session: session}, nil
}

// ===============================
// RegisterBarber
// ===============================

type RegisterBarberInput struct {
	ShopID   string `validate:"required"`
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Phone    string
}

// RegisterBarber é o autocadastro: o perfil nasce pendente até o admin aprovar.
type RegisterBarber struct {
	repo     barber.Repository
	provider auth.Provider
	audit    *audit.Dispatcher
	clock    timezone.Clock
	opts     Options
}

func NewRegisterBarber(
	repo barber.Repository,
	provider auth.Provider,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	opts Options,
) *RegisterBarber {
	return &RegisterBarber{repo: repo, provider: provider, audit: audit, clock: clock, opts: opts}
}

func (uc *RegisterBarber) Execute(ctx context.Context, in RegisterBarberInput) (*Registration, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := checkEmail(ctx, uc.opts, in.Email); err != nil {
		return nil, err
	}

	// a loja precisa existir antes de criar a conta
	shop, err := uc.repo.GetBarbershop(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	accountID, err := uc.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	u := &models.User{
		Base:      models.Base{ID: accountID},
		ShopID:    shop.ID,
		ShopName:  shop.Name,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      string(actor.RoleBarber),
		Status:    string(barber.InitialStatus(actor.RoleBarber, false)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, rollback(ctx, uc.provider, accountID, err)
	}

	session, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   u.ID,
		Action:   "barber_registered",
		Entity:   "barber",
		EntityID: u.ID,
	})

	return &Registration{User: u, Shop: shop, Session: session}, nil
}
