package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/auth"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/cache"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/event"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence/models"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

const (
	testAdminUser     = "admin"
	testAdminPassword = "s3cret-password"
	testCPF           = "52998224725"
)

type testEnv struct {
	router *gin.Engine
	db     *persistence.Database
	titles *debtapp.TitleService
}

type envOption func(*envConfig)

type envConfig struct {
	storage debtapp.ExportStorage
	pinger  Pinger
}

func withExportStorage(s debtapp.ExportStorage) envOption {
	return func(c *envConfig) { c.storage = s }
}

func withPinger(p Pinger) envOption {
	return func(c *envConfig) { c.pinger = p }
}

// newTestEnv wires the real services over an in-memory SQLite database
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := &envConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	database, err := persistence.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.DB.AutoMigrate(
		&models.DebtorModel{},
		&models.TitleModel{},
		&models.InstallmentModel{},
		&models.AuditEntryModel{},
	))

	log := zap.NewNop()
	titleRepo := persistence.NewGormTitleRepository(database.DB)
	debtorRepo := persistence.NewGormDebtorRepository(database.DB)
	auditRepo := persistence.NewGormAuditRepository(database.DB)

	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewIdempotentHandler(debtapp.NewPaymentAuditHandler(auditRepo, log), store, log))

	titleService := debtapp.NewTitleService(titleRepo, debtorRepo, auditRepo,
		debtapp.WithEventPublisher(bus),
		debtapp.WithIdempotencyStore(store),
		debtapp.WithClock(func() time.Time { return fixedNow }),
		debtapp.WithLogger(log),
	)
	debtorService := debtapp.NewDebtorService(debtorRepo, titleRepo, log)

	exportService := debtapp.NewExportService(titleService, cfg.storage, 15*time.Minute, log)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService, err := auth.NewJWTService(config.JWTConfig{
		Secret:                "handler-test-secret-at-least-32-chars",
		AccessTokenExpiration: time.Hour,
		Issuer:                "debt-titles-test",
	})
	require.NoError(t, err)
	authService := debtapp.NewAuthService(config.AdminConfig{Username: testAdminUser, PasswordHash: string(hash)}, jwtService, log)

	pinger := cfg.pinger
	if pinger == nil {
		pinger = database
	}

	middleware.SetupValidator()
	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api/v1")

	health := NewHealthHandler(pinger, "test")
	api.GET("/health", health.Health)

	authHandler := NewAuthHandler(authService)
	api.POST("/auth/login", authHandler.Login)

	debtors := NewDebtorHandler(debtorService)
	api.POST("/debtors", debtors.Create)
	api.GET("/debtors", debtors.List)
	api.GET("/debtors/:id", debtors.Get)
	api.PUT("/debtors/:id", debtors.Update)
	api.DELETE("/debtors/:id", debtors.Delete)

	titles := NewTitleHandler(titleService)
	exports := NewExportHandler(exportService)
	api.POST("/titles", titles.Create)
	api.GET("/titles", titles.List)
	api.GET("/titles/overdue", titles.Overdue)
	api.GET("/titles/export", exports.Export)
	api.POST("/titles/preview", titles.Preview)
	api.GET("/titles/:id", titles.Get)
	api.PUT("/titles/:id", titles.Update)
	api.DELETE("/titles/:id", titles.Delete)
	api.GET("/titles/:id/statement", titles.Statement)
	api.GET("/titles/:id/audit", titles.Audit)
	api.POST("/titles/:id/pay", titles.Pay)
	api.POST("/titles/:id/unpay", titles.Unpay)
	api.PUT("/titles/:id/installments", titles.ReplaceInstallments)
	api.POST("/titles/:id/installments/:number/pay", titles.PayInstallment)
	api.POST("/titles/:id/installments/:number/unpay", titles.ReopenInstallment)

	dashboard := NewDashboardHandler(titleService)
	api.GET("/dashboard/summary", dashboard.Summary)

	return &testEnv{router: r, db: database, titles: titleService}
}

// do sends a request; body may be nil, a string or any JSON-encodable value.
// headers are name/value pairs.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// requireError asserts the status and error code of a failed response
func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) *dto.ErrorInfo {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	env := decode[json.RawMessage](t, w)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
	require.Equal(t, w.Header().Get(middleware.RequestIDHeader), env.Error.RequestID)
	return env.Error
}

func (e *testEnv) createDebtor(t *testing.T) debtapp.DebtorResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/debtors", map[string]any{
		"name":     "José da Silva",
		"document": "529.982.247-25",
		"email":    "jose@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[debtapp.DebtorResponse](t, w).Data
}

// createTitle creates a 1000.00 title due 2024-03-10 at 1%/day with a 2%
// penalty; extra keys override the defaults.
func (e *testEnv) createTitle(t *testing.T, debtorID string, extra map[string]any) debtapp.TitleResponse {
	t.Helper()
	body := map[string]any{
		"debtorId":      debtorID,
		"description":   "Service contract",
		"originalValue": "1000.00",
		"dueDate":       "2024-03-10",
		"interestRate":  "1",
		"penaltyRate":   "2",
	}
	for k, v := range extra {
		body[k] = v
	}
	w := e.do(t, http.MethodPost, "/titles", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[debtapp.TitleResponse](t, w).Data
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// failingExportStorage rejects every upload
type failingExportStorage struct{ err error }

func (f failingExportStorage) Upload(context.Context, string, []byte, string) error {
	return f.err
}

func (f failingExportStorage) GenerateDownloadURL(context.Context, string, time.Duration) (string, time.Time, error) {
	return "", time.Time{}, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
