package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func text(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func serve(engine http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("debtors", "/debtors")
	g.GET("", text("list"))
	r.Register(g).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/debtors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list", w.Body.String())
}

func TestRouterUse(t *testing.T) {
	engine := gin.New()
	engine.GET("/outside", text("outside"))
	r := NewRouter(engine)

	var order []string
	r.Use(func(c *gin.Context) {
		order = append(order, "router")
		c.Next()
	})
	g := NewDomainGroup("titles", "/titles").Use(func(c *gin.Context) {
		order = append(order, "group")
		c.Next()
	})
	g.GET("", text("titles"))
	r.Register(g).Setup()

	serve(engine, http.MethodGet, "/api/v1/titles")
	assert.Equal(t, []string{"router", "group"}, order)

	order = nil
	serve(engine, http.MethodGet, "/outside")
	assert.Empty(t, order, "router middleware only wraps the API group")
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("titles", "/titles")
		assert.Equal(t, "titles", g.Name())
		assert.Equal(t, "/titles", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("titles", "/titles")
		g.GET("/:id", text("get")).
			POST("", text("post")).
			PUT("/:id", text("put")).
			PATCH("/:id", text("patch")).
			DELETE("/:id", text("delete"))
		g.RegisterRoutes(engine.Group("/api/v1"))

		tests := []struct {
			method string
			path   string
			body   string
		}{
			{http.MethodGet, "/api/v1/titles/1", "get"},
			{http.MethodPost, "/api/v1/titles", "post"},
			{http.MethodPut, "/api/v1/titles/1", "put"},
			{http.MethodPatch, "/api/v1/titles/1", "patch"},
			{http.MethodDelete, "/api/v1/titles/1", "delete"},
		}
		for _, tt := range tests {
			t.Run(tt.method, func(t *testing.T) {
				w := serve(engine, tt.method, tt.path)
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, tt.body, w.Body.String())
			})
		}
	})

	t.Run("subgroups inherit the prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("titles", "/titles")
		g.Group("installments", "/:id/installments").POST("/:number/pay", text("paid"))
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodPost, "/api/v1/titles/abc/installments/2/pay")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "paid", w.Body.String())
	})

	t.Run("group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("titles", "/titles").Use(func(c *gin.Context) {
			c.Header("X-Group", "titles")
			c.Next()
		})
		g.GET("", text("ok"))
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, "titles", serve(engine, http.MethodGet, "/api/v1/titles").Header().Get("X-Group"))
	})
}
