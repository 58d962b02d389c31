package handler

import (
	"net/http"

	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler serves the CSV export of titles
type ExportHandler struct {
	BaseHandler
	exportService *debtapp.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportService *debtapp.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export godoc
// @ID           exportTitles
// @Summary      Export titles as CSV
// @Description  With object storage configured the CSV is uploaded and a presigned link is returned. Otherwise the CSV is streamed as an attachment.
// @Tags         titles
// @Produce      json
// @Produce      text/csv
// @Param        debtorId      query string false "Debtor ID" format(uuid)
// @Param        status        query string false "open, overdue or paid"
// @Param        dueFrom       query string false "Due on or after (YYYY-MM-DD)"
// @Param        dueTo         query string false "Due on or before (YYYY-MM-DD)"
// @Param        referenceDate query string false "Accrual date (YYYY-MM-DD)"
// @Success      200 {object} DataResponse[debtapp.ExportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var filter debtapp.TitleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	if !h.exportService.StorageEnabled() {
		h.stream(c, filter)
		return
	}

	result, err := h.exportService.ExportTitlesCSV(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// stream writes the CSV straight into the response. Once the first row is
// out the status is committed, so a late failure can only be logged.
func (h *ExportHandler) stream(c *gin.Context, filter debtapp.TitleListFilter) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+h.exportService.ExportFileName()+`"`)
	c.Status(http.StatusOK)

	rows, err := h.exportService.WriteTitlesCSV(c.Request.Context(), c.Writer, filter)
	if err != nil {
		logger.With(c.Request.Context(), logger.GetGinLogger(c)).Error("CSV export aborted",
			zap.Int("rows", rows),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
}
