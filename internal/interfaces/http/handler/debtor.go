package handler

import (
	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/gin-gonic/gin"
)

// DebtorHandler handles debtor CRUD endpoints
type DebtorHandler struct {
	BaseHandler
	debtorService *debtapp.DebtorService
}

// NewDebtorHandler creates a new DebtorHandler
func NewDebtorHandler(debtorService *debtapp.DebtorService) *DebtorHandler {
	return &DebtorHandler{debtorService: debtorService}
}

// Create godoc
// @ID           createDebtor
// @Summary      Create a debtor
// @Description  Registers a debtor identified by a CPF or CNPJ document
// @Tags         debtors
// @Accept       json
// @Produce      json
// @Param        request body debtapp.CreateDebtorRequest true "Debtor"
// @Success      201 {object} DataResponse[debtapp.DebtorResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /debtors [post]
func (h *DebtorHandler) Create(c *gin.Context) {
	var req debtapp.CreateDebtorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.debtorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @ID           listDebtors
// @Summary      List debtors
// @Description  Pages through debtors. Search matches the name ignoring accents, or the document.
// @Tags         debtors
// @Produce      json
// @Param        page     query int    false "Page" default(1)
// @Param        pageSize query int    false "Page size" default(20)
// @Param        orderBy  query string false "Sort field"
// @Param        orderDir query string false "asc or desc"
// @Param        search   query string false "Name or document"
// @Success      200 {object} PageResponse[debtapp.DebtorResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /debtors [get]
func (h *DebtorHandler) List(c *gin.Context) {
	var filter debtapp.DebtorListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.debtorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getDebtor
// @Summary      Get a debtor
// @Tags         debtors
// @Produce      json
// @Param        id path string true "Debtor ID" format(uuid)
// @Success      200 {object} DataResponse[debtapp.DebtorResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /debtors/{id} [get]
func (h *DebtorHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.debtorService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateDebtor
// @Summary      Update a debtor
// @Tags         debtors
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Debtor ID" format(uuid)
// @Param        request body debtapp.UpdateDebtorRequest true "Debtor"
// @Success      200 {object} DataResponse[debtapp.DebtorResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /debtors/{id} [put]
func (h *DebtorHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req debtapp.UpdateDebtorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.debtorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteDebtor
// @Summary      Delete a debtor
// @Description  Fails with DEBTOR_HAS_TITLES while titles reference the debtor
// @Tags         debtors
// @Param        id path string true "Debtor ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /debtors/{id} [delete]
func (h *DebtorHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.debtorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
