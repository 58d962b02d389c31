package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/auth"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/event"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence/models"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/handler"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

const testPassword = "engine-test-password"

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "debt-titles", Env: "test"},
		JWT: config.JWTConfig{
			Secret:                "engine-test-secret-at-least-32-chars",
			AccessTokenExpiration: time.Hour,
			Issuer:                "debt-titles-test",
		},
		HTTP: config.HTTPConfig{
			MaxBodySize:     1 << 20,
			RateLimitWindow: time.Minute,
		},
		Swagger:   config.SwaggerConfig{Enabled: false},
		Telemetry: config.TelemetryConfig{ServiceName: "debt-titles-test"},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	database, err := persistence.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.DB.AutoMigrate(
		&models.DebtorModel{}, &models.TitleModel{}, &models.InstallmentModel{}, &models.AuditEntryModel{},
	))

	log := zap.NewNop()
	titleRepo := persistence.NewGormTitleRepository(database.DB)
	debtorRepo := persistence.NewGormDebtorRepository(database.DB)
	auditRepo := persistence.NewGormAuditRepository(database.DB)
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(debtapp.NewPaymentAuditHandler(auditRepo, log))

	titles := debtapp.NewTitleService(titleRepo, debtorRepo, auditRepo, debtapp.WithEventPublisher(bus))
	debtors := debtapp.NewDebtorService(debtorRepo, titleRepo, log)
	exports := debtapp.NewExportService(titles, nil, time.Minute, log)

	jwtService, err := auth.NewJWTService(cfg.JWT)
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Admin = config.AdminConfig{Username: "admin", PasswordHash: string(hash)}

	engine, err := NewEngine(EngineDeps{
		Config:      cfg,
		Logger:      log,
		JWTService:  jwtService,
		RateLimiter: limiter,
		Handlers: Handlers{
			Health:    handler.NewHealthHandler(database, "test"),
			Auth:      handler.NewAuthHandler(debtapp.NewAuthService(cfg.Admin, jwtService, log)),
			Debtor:    handler.NewDebtorHandler(debtors),
			Title:     handler.NewTitleHandler(titles),
			Export:    handler.NewExportHandler(exports),
			Dashboard: handler.NewDashboardHandler(titles),
		},
	})
	require.NoError(t, err)
	return engine
}

func request(engine http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine http.Handler) string {
	t.Helper()
	w := request(engine, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"`+testPassword+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data debtapp.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data.AccessToken
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestNewEngine_PublicRoutes(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	w := request(engine, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	login(t, engine)
}

func TestNewEngine_ProtectedRoutes(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/debtors"},
		{http.MethodGet, "/api/v1/titles"},
		{http.MethodGet, "/api/v1/titles/overdue"},
		{http.MethodGet, "/api/v1/titles/export"},
		{http.MethodPost, "/api/v1/titles/preview"},
		{http.MethodGet, "/api/v1/dashboard/summary"},
		{http.MethodPost, "/api/v1/titles/00000000-0000-0000-0000-000000000001/installments/1/pay"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := request(engine, route.method, route.path, "", "")
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, dto.ErrCodeTokenInvalid, errorCode(t, w))
		})
	}
}

func TestNewEngine_AuthenticatedFlow(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)
	token := login(t, engine)

	w := request(engine, http.MethodPost, "/api/v1/debtors",
		`{"name":"Maria Souza","document":"11.222.333/0001-81"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data debtapp.DebtorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "CNPJ", created.Data.DocumentType)

	w = request(engine, http.MethodPost, "/api/v1/titles", `{
		"debtorId": "`+created.Data.ID.String()+`",
		"originalValue": "250.00",
		"dueDate": "2024-01-31",
		"installments": {"count": 2}
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(engine, http.MethodGet, "/api/v1/titles/overdue", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(engine, http.MethodGet, "/api/v1/dashboard/summary?referenceDate=2024-02-01", "", token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestNewEngine_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		engine := newTestEngine(t, testConfig(), nil)

		w := request(engine, http.MethodGet, "/swagger/index.html", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires a token when configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Swagger = config.SwaggerConfig{Enabled: true, RequireAuth: true}
		engine := newTestEngine(t, cfg, nil)

		w := request(engine, http.MethodGet, "/swagger/index.html", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = request(engine, http.MethodGet, "/swagger/index.html", "", login(t, engine))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewEngine_NoRoute(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	w := request(engine, http.MethodGet, "/api/v1/nothing-here", "", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, errorCode(t, w))
}

func TestNewEngine_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	engine := newTestEngine(t, testConfig(), limiter)

	for range 2 {
		require.Equal(t, http.StatusOK, request(engine, http.MethodGet, "/api/v1/health", "", "").Code)
	}
	w := request(engine, http.MethodGet, "/api/v1/health", "", "")

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, w))
}

func TestNewEngine_BodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.MaxBodySize = 32
	engine := newTestEngine(t, cfg, nil)

	w := request(engine, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"`+strings.Repeat("x", 64)+`"}`, "")

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, dto.ErrCodeRequestTooLarge, errorCode(t, w))
}
