package account

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/validators"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginResult struct {
	User    *models.User
	Session *auth.Session
}

type Login struct {
	repo     barber.Repository
	provider auth.Provider
}

func NewLogin(repo barber.Repository, provider auth.Provider) *Login {
	return &Login{repo: repo, provider: provider}
}

// Execute devolve o perfil junto com a sessão; barbeiro pendente ou rejeitado
// consegue entrar, mas as rotas da loja continuam fechadas para ele.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	session, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	u, err := uc.repo.FindUser(ctx, session.AccountID)
	if httperr.KindOf(err) == httperr.KindNotFound {
		// conta sem perfil: cadastro interrompido
		_ = uc.provider.SignOut(context.WithoutCancel(ctx), session)
		return nil, httperr.ErrForbidden("profile_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Session: session}, nil
}

type Logout struct {
	provider auth.Provider
}

func NewLogout(provider auth.Provider) *Logout {
	return &Logout{provider: provider}
}

func (uc *Logout) Execute(ctx context.Context, token string) error {
	return uc.provider.SignOut(ctx, &auth.Session{Token: token})
}
