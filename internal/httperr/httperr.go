package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError traduz qualquer erro de use case para uma resposta HTTP.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch KindOf(err) {
	case KindValidation:
		code := codeOf(err)
		BadRequest(c, code, messageFor(code, "Dados inválidos."))
	case KindInvalidTransition:
		Write(c, http.StatusConflict, "invalid_transition", "Operação não permitida no estado atual. Atualize e tente novamente.")
	case KindInsufficientStock:
		Write(c, http.StatusConflict, "insufficient_stock", "Estoque insuficiente.")
	case KindSlotTaken:
		Write(c, http.StatusConflict, "slot_taken", "Horário já reservado. Escolha outro horário.")
	case KindConflict:
		code := codeOf(err)
		Write(c, http.StatusConflict, code, messageFor(code, "Registro em conflito com outro existente."))
	case KindNotFound:
		code := codeOf(err)
		NotFound(c, code, messageFor(code, "Registro não encontrado."))
	case KindForbidden:
		Forbidden(c, codeOf(err), "Acesso negado.")
	case KindAuth:
		Unauthorized(c, codeOf(err), "Credenciais inválidas.")
	case KindStorage:
		c.JSON(http.StatusServiceUnavailable, HTTPError{
			Code:      "storage_unavailable",
			Message:   "Serviço temporariamente indisponível. Tente novamente.",
			Retryable: true,
		})
	default:
		Internal(c, "operation_failed", "Erro ao processar a operação.")
	}
}

func codeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return string(KindOf(err))
}
