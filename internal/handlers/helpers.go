package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/middleware"
)

// mustActor devolve o ator autenticado; sem ele a resposta já foi escrita.
func mustActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok || !a.Valid() {
		httperr.Unauthorized(c, "unauthenticated", "Sessão inválida.")
		return actor.Actor{}, false
	}
	return a, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}
