package handler

import (
	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client key that makes a payment retry safe
const IdempotencyKeyHeader = "Idempotency-Key"

// TitleHandler handles debt title endpoints
type TitleHandler struct {
	BaseHandler
	titleService *debtapp.TitleService
}

// NewTitleHandler creates a new TitleHandler
func NewTitleHandler(titleService *debtapp.TitleService) *TitleHandler {
	return &TitleHandler{titleService: titleService}
}

type referenceDateQuery struct {
	ReferenceDate string `form:"referenceDate" binding:"omitempty,date"`
}

// referenceDate binds the optional referenceDate query parameter
func (h *BaseHandler) referenceDate(c *gin.Context) (*debtapp.Date, bool) {
	var q referenceDateQuery
	if !h.bindQuery(c, &q) {
		return nil, false
	}
	if q.ReferenceDate == "" {
		return nil, true
	}
	d, err := debtapp.ParseDate(q.ReferenceDate)
	if err != nil {
		h.BadRequest(c, "Invalid referenceDate format")
		return nil, false
	}
	return &d, true
}

// Create godoc
// @ID           createTitle
// @Summary      Create a debt title
// @Description  Creates a title for a debtor. Monthly rates are converted to a daily rate. An optional installment plan splits the value.
// @Tags         titles
// @Accept       json
// @Produce      json
// @Param        request body debtapp.CreateTitleRequest true "Title"
// @Success      201 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles [post]
func (h *TitleHandler) Create(c *gin.Context) {
	var req debtapp.CreateTitleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @ID           listTitles
// @Summary      List debt titles
// @Description  Pages through titles with their accrual at referenceDate (today by default)
// @Tags         titles
// @Produce      json
// @Param        page          query int    false "Page" default(1)
// @Param        pageSize      query int    false "Page size" default(20)
// @Param        orderBy       query string false "Sort field"
// @Param        orderDir      query string false "asc or desc"
// @Param        search        query string false "Number or description"
// @Param        debtorId      query string false "Debtor ID" format(uuid)
// @Param        status        query string false "open, overdue or paid"
// @Param        dueFrom       query string false "Due on or after (YYYY-MM-DD)"
// @Param        dueTo         query string false "Due on or before (YYYY-MM-DD)"
// @Param        referenceDate query string false "Accrual date (YYYY-MM-DD)"
// @Success      200 {object} PageResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles [get]
func (h *TitleHandler) List(c *gin.Context) {
	var filter debtapp.TitleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.titleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Overdue godoc
// @ID           listOverdueTitles
// @Summary      List overdue titles
// @Description  Unpaid titles past their due date at referenceDate
// @Tags         titles
// @Produce      json
// @Param        page          query int    false "Page" default(1)
// @Param        pageSize      query int    false "Page size" default(20)
// @Param        debtorId      query string false "Debtor ID" format(uuid)
// @Param        referenceDate query string false "Accrual date (YYYY-MM-DD)"
// @Success      200 {object} PageResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/overdue [get]
func (h *TitleHandler) Overdue(c *gin.Context) {
	var filter debtapp.TitleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.titleService.Overdue(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getTitle
// @Summary      Get a debt title
// @Description  Returns the title with its accrual at today's date
// @Tags         titles
// @Produce      json
// @Param        id path string true "Title ID" format(uuid)
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id} [get]
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.titleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Statement godoc
// @ID           getTitleStatement
// @Summary      Title statement at a date
// @Description  Computes interest, penalty and updated value of the title and its installments at referenceDate
// @Tags         titles
// @Produce      json
// @Param        id            path  string true  "Title ID" format(uuid)
// @Param        referenceDate query string false "Accrual date (YYYY-MM-DD)"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/statement [get]
func (h *TitleHandler) Statement(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	ref, ok := h.referenceDate(c)
	if !ok {
		return
	}
	resp, err := h.titleService.GetStatement(c.Request.Context(), id, ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateTitle
// @Summary      Update a debt title
// @Description  Replaces the terms of an unpaid title
// @Tags         titles
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Title ID" format(uuid)
// @Param        request body debtapp.UpdateTitleRequest true "Title terms"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id} [put]
func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req debtapp.UpdateTitleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteTitle
// @Summary      Delete a debt title
// @Tags         titles
// @Param        id path string true "Title ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id} [delete]
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.titleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Pay godoc
// @ID           payTitle
// @Summary      Mark a title as paid
// @Description  Settles the title and every open installment. Repeating the call with the same Idempotency-Key returns the first result.
// @Tags         titles
// @Produce      json
// @Param        id              path   string true  "Title ID" format(uuid)
// @Param        Idempotency-Key header string false "Client retry key"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/pay [post]
func (h *TitleHandler) Pay(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	key := c.GetHeader(IdempotencyKeyHeader)
	if len(key) > 128 {
		h.BadRequest(c, IdempotencyKeyHeader+" must be at most 128 characters")
		return
	}
	resp, err := h.titleService.MarkPaid(c.Request.Context(), id, key)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Unpay godoc
// @ID           unpayTitle
// @Summary      Reopen a paid title
// @Description  Reverts a payment. A reason is mandatory and is kept in the audit trail.
// @Tags         titles
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Title ID" format(uuid)
// @Param        request body debtapp.ReopenRequest true "Reason"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/unpay [post]
func (h *TitleHandler) Unpay(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req debtapp.ReopenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.MarkUnpaid(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReplaceInstallments godoc
// @ID           replaceInstallments
// @Summary      Replace the installment plan
// @Description  Splits the title value into a new plan. Fails once any installment is paid.
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Title ID" format(uuid)
// @Param        request body debtapp.InstallmentPlanRequest true "Plan"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/installments [put]
func (h *TitleHandler) ReplaceInstallments(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req debtapp.InstallmentPlanRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.ReplaceInstallments(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PayInstallment godoc
// @ID           payInstallment
// @Summary      Pay an installment
// @Description  Settles one installment. The title becomes paid with its last open installment.
// @Tags         installments
// @Produce      json
// @Param        id     path string true "Title ID" format(uuid)
// @Param        number path int    true "Installment number"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/installments/{number}/pay [post]
func (h *TitleHandler) PayInstallment(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}
	resp, err := h.titleService.PayInstallment(c.Request.Context(), id, number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReopenInstallment godoc
// @ID           reopenInstallment
// @Summary      Reopen a paid installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Title ID" format(uuid)
// @Param        number  path int                   true "Installment number"
// @Param        request body debtapp.ReopenRequest true "Reason"
// @Success      200 {object} DataResponse[debtapp.TitleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/installments/{number}/unpay [post]
func (h *TitleHandler) ReopenInstallment(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}
	var req debtapp.ReopenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.ReopenInstallment(c.Request.Context(), id, number, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Preview godoc
// @ID           previewInstallments
// @Summary      Preview an installment plan
// @Description  Simulates a split and its accrual without storing anything
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        request body debtapp.PreviewInstallmentsRequest true "Simulation"
// @Success      200 {object} DataResponse[debtapp.PreviewResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/preview [post]
func (h *TitleHandler) Preview(c *gin.Context) {
	var req debtapp.PreviewInstallmentsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.titleService.PreviewInstallments(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Audit godoc
// @ID           getTitleAudit
// @Summary      Payment audit trail
// @Description  Payment transitions recorded for the title, oldest first
// @Tags         titles
// @Produce      json
// @Param        id path string true "Title ID" format(uuid)
// @Success      200 {object} DataResponse[[]debtapp.AuditEntryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /titles/{id}/audit [get]
func (h *TitleHandler) Audit(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	entries, err := h.titleService.AuditTrail(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}
