package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})
	return sr, tp
}

func newTracedRouter(tp *sdktrace.TracerProvider, handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), TracingWithConfig(TracingConfig{
		ServiceName:    "test-service",
		Enabled:        true,
		SkipPaths:      []string{"/api/v1/health"},
		TracerProvider: tp,
	}))
	router.Use(handlers...)
	router.GET("/api/v1/titles/:id", okHandler)
	router.GET("/api/v1/health", okHandler)
	router.GET("/api/v1/fail", func(c *gin.Context) {
		c.Set(ErrorCodeKey, "NOT_FOUND")
		c.Status(http.StatusNotFound)
	})
	return router
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false}))
	router.GET("/test", okHandler)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTracingWithConfig_SpanPerRoute(t *testing.T) {
	sr, tp := setupTestTracer(t)
	router := newTracedRouter(tp)

	serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/titles/123", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/titles/:id", spans[0].Name())
}

func TestTracingWithConfig_SkipsHealth(t *testing.T) {
	sr, tp := setupTestTracer(t)
	router := newTracedRouter(tp)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracingAttributeInjector(t *testing.T) {
	sr, tp := setupTestTracer(t)
	setUser := func(c *gin.Context) {
		c.Set(JWTUsernameKey, "admin")
		c.Next()
	}
	router := newTracedRouter(tp, setUser, TracingAttributeInjector())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/titles/123", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	serve(router, req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spanAttrs(spans[0])
	assert.Equal(t, "req-7", attrs["request_id"].AsString())
	assert.Equal(t, "admin", attrs["enduser.id"].AsString())
}

func TestSpanErrorMarker(t *testing.T) {
	t.Run("marks error responses", func(t *testing.T) {
		sr, tp := setupTestTracer(t)
		router := newTracedRouter(tp, SpanErrorMarker())

		serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/fail", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "Not Found", spans[0].Status().Description)
		assert.Equal(t, "NOT_FOUND", spanAttrs(spans[0])["error.code"].AsString())
	})

	t.Run("leaves success alone", func(t *testing.T) {
		sr, tp := setupTestTracer(t)
		router := newTracedRouter(tp, SpanErrorMarker())

		serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/titles/1", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("no span is a no-op", func(t *testing.T) {
		router := gin.New()
		router.Use(SpanErrorMarker())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
