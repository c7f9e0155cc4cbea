package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// LocalProvider autentica contra a tabela credentials (bcrypt) e emite JWT HS256.
type LocalProvider struct {
	db          *gorm.DB
	tokens      *TokenManager
	sessions    SessionStore
	minPassword int
	timeout     time.Duration
	now         func() time.Time
}

var (
	_ Provider       = (*LocalProvider)(nil)
	_ AccountDeleter = (*LocalProvider)(nil)
	_ Verifier       = (*LocalProvider)(nil)
)

func NewLocalProvider(
	db *gorm.DB,
	tokens *TokenManager,
	sessions SessionStore,
	minPassword int,
	timeout time.Duration,
) *LocalProvider {
	if minPassword <= 0 {
		minPassword = 6
	}
	return &LocalProvider{
		db:          db,
		tokens:      tokens,
		sessions:    sessions,
		minPassword: minPassword,
		timeout:     timeout,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *LocalProvider) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	if len(password) < p.minPassword {
		return "", ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", &httperr.AuthError{Op: "sign_up", Err: err}
	}

	ctx, cancel := p.ctx(ctx)
	defer cancel()

	cred := models.Credential{
		Email:        normalizeEmail(email),
		PasswordHash: string(hashed),
	}
	if err := p.db.WithContext(ctx).Create(&cred).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return "", ErrEmailInUse
		}
		return "", &httperr.AuthError{Op: "sign_up", Err: err}
	}

	return cred.ID, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	ctx, cancel := p.ctx(ctx)
	defer cancel()

	var cred models.Credential
	err := p.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, &httperr.AuthError{Op: "sign_in", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, jti, expiresAt, err := p.tokens.Issue(cred.ID, p.now())
	if err != nil {
		return nil, &httperr.AuthError{Op: "sign_in", Err: err}
	}

	if err := p.sessions.Save(ctx, jti, cred.ID, p.tokens.TTL()); err != nil {
		return nil, &httperr.AuthError{Op: "sign_in", Err: err}
	}

	return &Session{AccountID: cred.ID, Token: token, ExpiresAt: expiresAt}, nil
}

// SignOut revoga a sessão. Token inválido já não autentica, então não é erro.
func (p *LocalProvider) SignOut(ctx context.Context, s *Session) error {
	if s == nil || s.Token == "" {
		return nil
	}

	claims, err := p.tokens.Parse(s.Token)
	if err != nil {
		return nil
	}

	ctx, cancel := p.ctx(ctx)
	defer cancel()

	if err := p.sessions.Revoke(ctx, claims.ID); err != nil {
		return &httperr.AuthError{Op: "sign_out", Err: err}
	}
	return nil
}

func (p *LocalProvider) DeleteAccount(ctx context.Context, accountID string) error {
	ctx, cancel := p.ctx(ctx)
	defer cancel()

	if err := p.db.WithContext(ctx).
		Where("id = ?", accountID).
		Delete(&models.Credential{}).Error; err != nil {
		return &httperr.AuthError{Op: "delete_account", Err: err}
	}
	return nil
}

// Verify confere assinatura, expiração e se a sessão não foi revogada.
func (p *LocalProvider) Verify(ctx context.Context, token string) (string, error) {
	claims, err := p.tokens.Parse(token)
	if err != nil {
		return "", err
	}

	ctx, cancel := p.ctx(ctx)
	defer cancel()

	ok, err := p.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return "", &httperr.AuthError{Op: "verify", Err: err}
	}
	if !ok {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
