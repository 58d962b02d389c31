package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSwaggerRouter(cfg config.SwaggerConfig, jwt gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	docs := router.Group("/swagger", SwaggerProtection(cfg, jwt))
	docs.GET("/*any", okHandler)
	return router
}

func swaggerRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestSwaggerProtection_Disabled(t *testing.T) {
	w := serve(newSwaggerRouter(config.SwaggerConfig{}, nil), swaggerRequest("10.0.0.1:1234"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestSwaggerProtection_Open(t *testing.T) {
	w := serve(newSwaggerRouter(config.SwaggerConfig{Enabled: true}, nil), swaggerRequest("10.0.0.1:1234"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerProtection_AllowList(t *testing.T) {
	cfg := config.SwaggerConfig{
		Enabled:    true,
		AllowedIPs: []string{"192.168.1.10", "10.0.0.0/8", "not-an-ip"},
	}
	router := newSwaggerRouter(cfg, nil)

	tests := []struct {
		remote string
		code   int
	}{
		{"192.168.1.10:5000", http.StatusOK},
		{"10.20.30.40:5000", http.StatusOK},
		{"192.168.1.11:5000", http.StatusForbidden},
		{"172.16.0.1:5000", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			assert.Equal(t, tt.code, serve(router, swaggerRequest(tt.remote)).Code)
		})
	}
}

func TestSwaggerProtection_RequireAuth(t *testing.T) {
	deny := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}
	allow := func(c *gin.Context) {}
	cfg := config.SwaggerConfig{Enabled: true, RequireAuth: true}

	assert.Equal(t, http.StatusUnauthorized, serve(newSwaggerRouter(cfg, deny), swaggerRequest("10.0.0.1:1")).Code)
	assert.Equal(t, http.StatusOK, serve(newSwaggerRouter(cfg, allow), swaggerRequest("10.0.0.1:1")).Code)
}

func TestSwaggerProtection_AllowListCheckedBeforeAuth(t *testing.T) {
	called := false
	jwt := func(c *gin.Context) { called = true }
	cfg := config.SwaggerConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"127.0.0.1"}}

	w := serve(newSwaggerRouter(cfg, jwt), swaggerRequest("10.0.0.1:1"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestIsIPAllowed(t *testing.T) {
	prefixes := parseAllowedIPs([]string{"127.0.0.1", "::1", "10.0.0.0/8", " 192.168.0.0/16 "})

	assert.Len(t, prefixes, 4)
	assert.True(t, isIPAllowed("127.0.0.1", prefixes))
	assert.True(t, isIPAllowed("::1", prefixes))
	assert.True(t, isIPAllowed("::ffff:10.1.2.3", prefixes))
	assert.True(t, isIPAllowed("192.168.44.1", prefixes))
	assert.False(t, isIPAllowed("8.8.8.8", prefixes))
	assert.False(t, isIPAllowed("garbage", prefixes))
}
