package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

const (
	ContextActor = "actor"
	ContextUser  = "user"
	ContextToken = "token"
)

// UserFinder resolve o perfil dono da sessão.
type UserFinder interface {
	FindUser(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware valida o Bearer token no provedor e injeta o ator da requisição.
// O ator sai sempre do perfil gravado, nunca de claims do token.
func AuthMiddleware(verifier auth.Verifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token não informado")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido")
			c.Abort()
			return
		}

		accountID, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			httperr.FromError(c, err)
			c.Abort()
			return
		}

		u, err := users.FindUser(c.Request.Context(), accountID)
		if httperr.KindOf(err) == httperr.KindNotFound {
			httperr.Unauthorized(c, "profile_not_found", "Perfil não encontrado")
			c.Abort()
			return
		}
		if err != nil {
			httperr.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, u)
		c.Set(ContextToken, parts[1])
		c.Set(ContextActor, actor.Actor{
			UserID: u.ID,
			ShopID: u.ShopID,
			Name:   u.Name,
			Role:   actor.Role(u.Role),
		})

		c.Next()
	}
}

// RequireActive fecha as rotas da loja para contas pendentes, inativas ou rejeitadas.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := UserFrom(c)
		if !ok || u.Status != string(barber.StatusActive) {
			httperr.Forbidden(c, "account_not_active", "Conta aguardando aprovação ou desativada")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := ActorFrom(c)
		if !ok || !a.IsAdmin() {
			httperr.Forbidden(c, "admin_only", "Acesso restrito ao administrador")
			c.Abort()
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (actor.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return actor.Actor{}, false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}

func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

func TokenFrom(c *gin.Context) string {
	return c.GetString(ContextToken)
}
