package handler

import (
	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves portfolio aggregates
type DashboardHandler struct {
	BaseHandler
	titleService *debtapp.TitleService
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(titleService *debtapp.TitleService) *DashboardHandler {
	return &DashboardHandler{titleService: titleService}
}

// Summary godoc
// @ID           dashboardSummary
// @Summary      Portfolio summary
// @Description  Counts and totals of every title at referenceDate (today by default)
// @Tags         dashboard
// @Produce      json
// @Param        referenceDate query string false "Accrual date (YYYY-MM-DD)"
// @Success      200 {object} DataResponse[debtapp.SummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ref, ok := h.referenceDate(c)
	if !ok {
		return
	}
	resp, err := h.titleService.Summary(c.Request.Context(), ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
