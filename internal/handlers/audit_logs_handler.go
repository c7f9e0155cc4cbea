package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/logger"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List GET /audit-logs?action=&entity=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	if err := a.RequireAdmin(); err != nil {
		httperr.FromError(c, err)
		return
	}

	page := queryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}
	limit := queryInt(c, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := h.logs.List(a.ShopID, audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.FromGin(c).Error("audit list failed", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"logs":  logs,
	})
}
