package httperr

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifica o erro para o chamador decidir se repete ou não a operação.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInvalidTransition Kind = "invalid_transition"
	KindInsufficientStock Kind = "insufficient_stock"
	KindSlotTaken         Kind = "slot_taken"
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindForbidden         Kind = "forbidden"
	KindAuth              Kind = "auth"
	KindStorage           Kind = "storage"
	KindUnknown           Kind = "unknown"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness é um erro de validação de entrada.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindAuth, Code: code}
}

var (
	ErrInsufficientStock = BusinessError{Kind: KindInsufficientStock, Code: "insufficient_stock"}
	ErrSlotTaken         = BusinessError{Kind: KindSlotTaken, Code: "slot_taken"}
)

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// InvalidTransition indica um movimento ilegal de ciclo de vida.
// O chamador precisa reler o estado atual antes de tentar de novo.
type InvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransition) Error() string {
	return fmt.Sprintf("invalid_transition: %s %s -> %s", e.Entity, e.From, e.To)
}

// StorageError embrulha falhas do banco. Sempre pode ser repetida.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuthError embrulha falhas do provedor de autenticação (não credenciais inválidas).
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	var it *InvalidTransition
	if errors.As(err, &it) {
		return KindInvalidTransition
	}
	var se *StorageError
	if errors.As(err, &se) {
		return KindStorage
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return KindStorage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindStorage
	}
	return KindUnknown
}

// IsDomain diz se o erro é uma condição esperada do domínio (não uma falha de infra).
func IsDomain(err error) bool {
	switch KindOf(err) {
	case KindStorage, KindUnknown, "":
		return false
	}
	return true
}

func IsRetryable(err error) bool {
	return KindOf(err) == KindStorage
}
