package barber

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
	"github.com/BruksfildServices01/barbershop-manager/internal/validators"
)

type CreateBarberInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Phone    string
}

// CreateBarber: o admin cria o login do barbeiro sem perder a própria sessão.
type CreateBarber struct {
	repo     domain.Repository
	provider auth.Provider
	audit    *audit.Dispatcher
	log      *zap.Logger
	clock    timezone.Clock
}

func NewCreateBarber(
	repo domain.Repository,
	provider auth.Provider,
	audit *audit.Dispatcher,
	log *zap.Logger,
	clock timezone.Clock,
) *CreateBarber {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateBarber{repo: repo, provider: provider, audit: audit, log: log, clock: clock}
}

func (uc *CreateBarber) Execute(
	ctx context.Context,
	a actor.Actor,
	in CreateBarberInput,
) (*models.User, error) {

	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}

	var created *models.User
	accountID, err := auth.WithSecondarySession(ctx, uc.provider, in.Email, in.Password,
		func(ctx context.Context, accountID string) error {
			now := uc.clock.Now()
			u := &models.User{
				Base:      models.Base{ID: accountID},
				ShopID:    shop.ID,
				ShopName:  shop.Name,
				Name:      strings.TrimSpace(in.Name),
				Email:     strings.ToLower(strings.TrimSpace(in.Email)),
				Phone:     strings.TrimSpace(in.Phone),
				Role:      string(actor.RoleBarber),
				Status:    string(domain.InitialStatus(actor.RoleBarber, true)),
				UpdatedBy: a.UserID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uc.repo.CreateUser(ctx, u); err != nil {
				return err
			}
			created = u
			return nil
		},
	)
	if err != nil && accountID == "" {
		return nil, err
	}
	if err != nil {
		// perfil criado; só o encerramento da sessão secundária falhou
		uc.log.Warn("secondary session sign-out failed",
			zap.String("account_id", accountID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: created.ID,
	})

	return created, nil
}
