package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

func newLocal(t *testing.T) *LocalProvider {
	t.Helper()
	return NewLocalProvider(
		dbtest.New(t),
		NewTokenManager("test-secret", time.Hour),
		NewMemorySessions(),
		6,
		time.Second,
	)
}

func TestSignUpSignInSignOut(t *testing.T) {
	ctx := context.Background()
	p := newLocal(t)

	id, err := p.SignUp(ctx, " Admin@Shop.com ", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := p.SignIn(ctx, "admin@shop.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, s.AccountID)
	assert.NotEmpty(t, s.Token)

	sub, err := p.Verify(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, id, sub)

	require.NoError(t, p.SignOut(ctx, s))

	_, err = p.Verify(ctx, s.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignUpErrors(t *testing.T) {
	ctx := context.Background()
	p := newLocal(t)

	_, err := p.SignUp(ctx, "a@b.com", "123")
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	_, err = p.SignUp(ctx, "a@b.com", "123456")
	require.NoError(t, err)

	_, err = p.SignUp(ctx, "A@B.com", "abcdef")
	assert.ErrorIs(t, err, ErrEmailInUse)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestSignInInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	p := newLocal(t)

	_, err := p.SignUp(ctx, "a@b.com", "123456")
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "a@b.com", "wrong!!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@b.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	p := newLocal(t)

	id, err := p.SignUp(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	require.NoError(t, p.DeleteAccount(ctx, id))

	_, err = p.SignIn(ctx, "a@b.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// e-mail fica livre de novo
	_, err = p.SignUp(ctx, "a@b.com", "123456")
	assert.NoError(t, err)
}

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("k1", time.Minute)
	now := time.Now()

	tok, jti, exp, err := m.Issue("acc", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Minute), exp, time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "acc", claims.Subject)
	assert.Equal(t, jti, claims.ID)

	_, err = NewTokenManager("other", time.Minute).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, _, err := m.Issue("acc", now.Add(-2*time.Minute))
	require.NoError(t, err)
	_, err = m.Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
