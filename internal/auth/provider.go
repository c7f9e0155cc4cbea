package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

// Session é uma sessão emitida pelo provedor.
type Session struct {
	AccountID string    `json:"account_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Provider é o contrato do provedor de autenticação.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, s *Session) error
}

// AccountDeleter é opcional; permite desfazer um SignUp cujo perfil falhou.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, accountID string) error
}

// Verifier resolve um token de acesso na conta dona da sessão.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

var (
	ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials")
	ErrEmailInUse         = httperr.ErrConflict("email_in_use")
	ErrWeakPassword       = httperr.ErrBusiness("weak_password")
	ErrInvalidToken       = httperr.ErrUnauthorized("invalid_token")
)
