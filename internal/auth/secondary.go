package auth

import (
	"context"
	"errors"
)

// WithSecondarySession cria a conta, abre uma sessão isolada só para ela e roda fn.
// A sessão é sempre encerrada, com sucesso ou falha, sem tocar na sessão do chamador.
// Se fn falhar, a conta recém-criada é removida quando o provedor permite.
//
// accountID só volta preenchido quando fn terminou bem; nesse caso um erro
// junto significa apenas falha ao encerrar a sessão secundária.
func WithSecondarySession(
	ctx context.Context,
	p Provider,
	email, password string,
	fn func(ctx context.Context, accountID string) error,
) (accountID string, err error) {

	id, err := p.SignUp(ctx, email, password)
	if err != nil {
		return "", err
	}

	session, err := p.SignIn(ctx, email, password)
	if err != nil {
		return "", errors.Join(err, discard(ctx, p, id))
	}

	defer func() {
		// encerra mesmo com ctx cancelado
		if outErr := p.SignOut(context.WithoutCancel(ctx), session); outErr != nil {
			err = errors.Join(err, outErr)
		}
	}()

	if err := fn(ctx, id); err != nil {
		return "", errors.Join(err, discard(ctx, p, id))
	}

	return id, nil
}

func discard(ctx context.Context, p Provider, accountID string) error {
	d, ok := p.(AccountDeleter)
	if !ok {
		return nil
	}
	return d.DeleteAccount(context.WithoutCancel(ctx), accountID)
}
