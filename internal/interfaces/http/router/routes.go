package router

import "github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/handler"

// Handlers are the HTTP handlers mounted under the API prefix
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Debtor    *handler.DebtorHandler
	Title     *handler.TitleHandler
	Export    *handler.ExportHandler
	Dashboard *handler.DashboardHandler
}

// APIGroups builds the route groups of the debt titles API
func APIGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("system", "")
	system.GET("/health", h.Health.Health)

	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", h.Auth.Login)

	debtors := NewDomainGroup("debtors", "/debtors")
	debtors.GET("", h.Debtor.List).
		POST("", h.Debtor.Create).
		GET("/:id", h.Debtor.Get).
		PUT("/:id", h.Debtor.Update).
		DELETE("/:id", h.Debtor.Delete)

	titles := NewDomainGroup("titles", "/titles")
	titles.GET("", h.Title.List).
		POST("", h.Title.Create).
		GET("/overdue", h.Title.Overdue).
		GET("/export", h.Export.Export).
		POST("/preview", h.Title.Preview).
		GET("/:id", h.Title.Get).
		PUT("/:id", h.Title.Update).
		DELETE("/:id", h.Title.Delete).
		GET("/:id/statement", h.Title.Statement).
		GET("/:id/audit", h.Title.Audit).
		POST("/:id/pay", h.Title.Pay).
		POST("/:id/unpay", h.Title.Unpay)

	installments := titles.Group("installments", "/:id/installments")
	installments.PUT("", h.Title.ReplaceInstallments).
		POST("/:number/pay", h.Title.PayInstallment).
		POST("/:number/unpay", h.Title.ReopenInstallment)

	dashboard := NewDomainGroup("dashboard", "/dashboard")
	dashboard.GET("/summary", h.Dashboard.Summary)

	return []*DomainGroup{system, authRoutes, debtors, titles, dashboard}
}
