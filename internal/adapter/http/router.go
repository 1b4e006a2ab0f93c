package http

import (
	"net/http"

	"claims-backoffice/internal/adapter/middleware"
	"claims-backoffice/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Routes groups every handler mounted by Register. Session is required;
// BodyLimit, Idempotency and Metrics may be nil. BodyLimit runs first on /api.
type Routes struct {
	Health      *Handler
	Auth        *AuthHandler
	Cases       *CaseHandler
	Claims      *ClaimHandler
	Financial   *FinancialHandler
	Offboarding *OffboardingHandler
	Partners    *PartnerHandler
	Providers   *ProviderHandler
	Users       *UserHandler

	BodyLimit   echo.MiddlewareFunc
	Session     echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
	Metrics     http.Handler
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	var limit []echo.MiddlewareFunc
	if r.BodyLimit != nil {
		limit = append(limit, r.BodyLimit)
	}
	e.POST("/api/auth/login", r.Auth.Login, limit...)

	api := e.Group("/api", append(limit, r.Session)...)
	if r.Idempotency != nil {
		api.Use(r.Idempotency)
	}

	api.POST("/auth/logout", r.Auth.Logout)
	api.GET("/auth/session", r.Auth.Session)

	api.GET("/cases", r.Cases.List)
	api.POST("/cases", r.Cases.Create)
	api.GET("/cases/:id", r.Cases.Get)
	api.PUT("/cases/:id", r.Cases.Update)
	api.PUT("/cases/:id/assign", r.Cases.Assign)

	api.GET("/claims", r.Claims.List)
	api.POST("/claims", r.Claims.Create)
	api.GET("/claims/stats", r.Claims.Stats)
	api.GET("/claims/:id", r.Claims.Get)
	api.PUT("/claims/:id", r.Claims.Update)
	api.DELETE("/claims/:id", r.Claims.Delete)
	api.PUT("/claims/:id/status", r.Claims.UpdateStatus)
	api.GET("/claims/:id/transitions", r.Claims.Transitions)
	api.POST("/claims/:id/upload", r.Claims.Upload)
	api.GET("/claims/:id/file", r.Claims.File)

	fin := api.Group("/claims/:id/financial-step")
	fin.GET("", r.Financial.Get)
	fin.PUT("", r.Financial.Update)
	fin.PUT("/bank-accounts", r.Financial.ReplaceBankAccounts)
	fin.PUT("/credit-cards", r.Financial.ReplaceCreditCards)
	fin.PUT("/loans", r.Financial.ReplaceLoans)
	fin.PUT("/mortgages", r.Financial.ReplaceMortgages)
	fin.PUT("/hire-purchase-agreements", r.Financial.ReplaceHirePurchaseAgreements)
	fin.POST("/bank-accounts/:accountId/statements", r.Financial.UploadBankStatement)
	fin.POST("/credit-cards/:cardId/statements", r.Financial.UploadCardStatement)
	fin.GET("/statements/download", r.Financial.Statement)
	fin.DELETE("/bank-statements/:statementId", r.Financial.DeleteBankStatement)
	fin.DELETE("/card-statements/:statementId", r.Financial.DeleteCardStatement)

	off := api.Group("/claims/:id/offboarding-step")
	off.GET("", r.Offboarding.Get)
	off.PUT("", r.Offboarding.Update)
	off.POST("/documents", r.Offboarding.Upload)
	off.GET("/documents/download", r.Offboarding.File)
	off.PUT("/documents/:docId", r.Offboarding.UpdateDocument)
	off.DELETE("/documents/:docId", r.Offboarding.DeleteDocument)

	api.GET("/partners", r.Partners.List)
	api.POST("/partners", r.Partners.Create)
	api.GET("/partners/:id", r.Partners.Get)
	api.PUT("/partners/:id", r.Partners.Update)
	api.DELETE("/partners/:id", r.Partners.Delete)

	api.GET("/service-providers", r.Providers.List)
	api.GET("/service-providers/search", r.Providers.Search)
	api.POST("/service-providers", r.Providers.Create)
	api.GET("/service-providers/:id", r.Providers.Get)
	api.PUT("/service-providers/:id", r.Providers.Update)
	api.DELETE("/service-providers/:id", r.Providers.Delete)

	admin := middleware.RequireRole(user.RoleAdmin)
	api.GET("/users", r.Users.List)
	api.GET("/users/search", r.Users.Search)
	api.GET("/users/:id", r.Users.Get)
	api.POST("/users", r.Users.Create, admin)
	api.PUT("/users/:id", r.Users.Update, admin)
	api.DELETE("/users/:id", r.Users.Delete, admin)
}
