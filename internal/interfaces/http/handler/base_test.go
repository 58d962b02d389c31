package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.RequestIDKey, "req-1")
	return c, w
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound, "Resource not found"},
		{"wrapped domain error", fmt.Errorf("loading: %w", shared.ErrConcurrencyConflict), http.StatusConflict, dto.ErrCodeConcurrencyConflict, ""},
		{"domain rule", shared.NewDomainError("INVALID_AMOUNT", "Amount must not be negative"), http.StatusUnprocessableEntity, "INVALID_AMOUNT", "Amount must not be negative"},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newErrorContext()
			h := &BaseHandler{}

			h.HandleError(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			env := decode[any](t, w)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, "req-1", env.Error.RequestID)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, env.Error.Message)
			}
			assert.Equal(t, tt.code, c.GetString(middleware.ErrorCodeKey))
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	c, w := newErrorContext()

	(&BaseHandler{}).HandleError(c, nil)

	assert.False(t, c.Writer.Written())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBaseHandler_BindJSONTooLarge(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.BodyLimit(16))
	r.POST("/", func(c *gin.Context) {
		var body map[string]any
		if (&BaseHandler{}).bindJSON(c, &body) {
			c.Status(http.StatusOK)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"reason": "`+strings.Repeat("x", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requireError(t, w, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge)
}
