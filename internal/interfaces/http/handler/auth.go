package handler

import (
	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the administrator login
type AuthHandler struct {
	BaseHandler
	authService *debtapp.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *debtapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @ID           login
// @Summary      Administrator login
// @Description  Exchanges the administrator credential for a bearer access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body debtapp.LoginRequest true "Login credentials"
// @Success      200 {object} DataResponse[debtapp.LoginResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req debtapp.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
