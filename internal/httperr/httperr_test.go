package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", ErrBusiness("invalid_price"), KindValidation},
		{"wrapped validation", fmt.Errorf("ctx: %w", ErrBusiness("x")), KindValidation},
		{"transition", &InvalidTransition{Entity: "barber", From: "rejected", To: "active"}, KindInvalidTransition},
		{"stock", ErrInsufficientStock, KindInsufficientStock},
		{"slot", ErrSlotTaken, KindSlotTaken},
		{"conflict", ErrConflict("barcode_in_use"), KindConflict},
		{"not found", ErrNotFound("product_not_found"), KindNotFound},
		{"storage", &StorageError{Op: "sell", Err: errors.New("conn reset")}, KindStorage},
		{"auth outage", &AuthError{Op: "sign_in", Err: errors.New("timeout")}, KindStorage},
		{"deadline", context.DeadlineExceeded, KindStorage},
		{"unknown", errors.New("boom"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestRetryableAndDomain(t *testing.T) {
	assert.True(t, IsRetryable(&StorageError{Op: "x", Err: errors.New("y")}))
	assert.False(t, IsRetryable(ErrInsufficientStock))
	assert.True(t, IsDomain(ErrSlotTaken))
	assert.True(t, IsDomain(&InvalidTransition{}))
	assert.False(t, IsDomain(errors.New("boom")))
	assert.False(t, IsDomain(nil))
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrConflict("barcode_in_use"))
	assert.True(t, IsBusiness(err, "barcode_in_use"))
	assert.False(t, IsBusiness(err, "other"))
	assert.False(t, IsBusiness(errors.New("barcode_in_use"), "barcode_in_use"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: appointments.shop_id")))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("invalid_price"), http.StatusBadRequest, "invalid_price"},
		{&InvalidTransition{Entity: "haircut", From: "rejected", To: "approved"}, http.StatusConflict, "invalid_transition"},
		{ErrInsufficientStock, http.StatusConflict, "insufficient_stock"},
		{ErrSlotTaken, http.StatusConflict, "slot_taken"},
		{ErrConflict("barcode_in_use"), http.StatusConflict, "barcode_in_use"},
		{ErrNotFound("product_not_found"), http.StatusNotFound, "product_not_found"},
		{ErrForbidden("admin_only"), http.StatusForbidden, "admin_only"},
		{ErrUnauthorized("invalid_credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{&StorageError{Op: "sell", Err: errors.New("down")}, http.StatusServiceUnavailable, "storage_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "operation_failed"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tc.err)

		require.Equal(t, tc.status, w.Code, tc.code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestFromErrorMessagePerCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	message := func(err error) string {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, err)

		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Message
	}

	price := message(ErrBusiness("price_must_exceed_cost"))
	slot := message(ErrBusiness("invalid_slot"))
	assert.Equal(t, "O preço de venda precisa ser maior que o custo.", price)
	assert.NotEqual(t, price, slot)
	assert.NotEqual(t, message(ErrConflict("barcode_in_use")), message(ErrConflict("email_in_use")))
	assert.Equal(t, "Produto não encontrado.", message(ErrNotFound("product_not_found")))

	// código sem texto próprio cai na mensagem do tipo
	assert.Equal(t, "Dados inválidos.", message(ErrBusiness("x")))
	assert.Equal(t, "Registro não encontrado.", message(ErrNotFound("not_found")))
}
