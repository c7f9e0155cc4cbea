package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/report"
)

type ReportHandler struct {
	dashboard *report.Dashboard
	earnings  *report.Earnings
	revenue   *report.Revenue
}

func NewReportHandler(dashboard *report.Dashboard, earnings *report.Earnings, revenue *report.Revenue) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, earnings: earnings, revenue: revenue}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	d, err := h.dashboard.Execute(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, d)
}

// Earnings GET /reports/earnings?barber_id= (barbeiro sempre vê só os próprios)
func (h *ReportHandler) Earnings(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	e, err := h.earnings.Execute(c.Request.Context(), a, c.Query("barber_id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, e)
}

// Revenue GET /reports/revenue?day=YYYY-MM-DD
func (h *ReportHandler) Revenue(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	t, err := h.revenue.Execute(c.Request.Context(), a, c.Query("day"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, t)
}
