package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

// base concentra o limite de tempo e a tradução de erros de todos os repositórios.
type base struct {
	db      *gorm.DB
	timeout time.Duration
}

func newBase(db *gorm.DB, timeout time.Duration) base {
	return base{db: db, timeout: timeout}
}

// conn devolve a sessão gorm presa a um contexto com prazo.
func (b base) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if b.timeout <= 0 {
		return b.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return b.db.WithContext(ctx), cancel
}

// storageErr mantém erros de domínio e embrulha o resto como StorageError.
func storageErr(op string, err error) error {
	if err == nil || httperr.IsDomain(err) {
		return err
	}
	var se *httperr.StorageError
	if errors.As(err, &se) {
		return err
	}
	return &httperr.StorageError{Op: op, Err: err}
}

// findErr traduz registro ausente para NotFound com o código da entidade.
func findErr(op, notFoundCode string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(notFoundCode)
	}
	return storageErr(op, err)
}

// cas é a escrita condicional: UPDATE ... WHERE id AND shop_id AND <guard>.
// Depois relê a linha; sem linha afetada, onMiss decide o erro a partir do estado atual.
func cas[T any](
	tx *gorm.DB,
	op, notFoundCode string,
	shopID, id string,
	guard map[string]any,
	updates map[string]any,
	onMiss func(current *T) error,
) (*T, error) {

	res := tx.Model(new(T)).
		Where("id = ? AND shop_id = ?", id, shopID).
		Where(guard).
		Updates(updates)
	if res.Error != nil {
		return nil, storageErr(op, res.Error)
	}

	var current T
	if err := tx.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&current).Error; err != nil {
		return nil, findErr(op, notFoundCode, err)
	}

	if res.RowsAffected == 0 {
		return nil, onMiss(&current)
	}
	return &current, nil
}
