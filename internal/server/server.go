// Package server assembles the echo instance: global middleware, the
// /api/v1 route table and the operational endpoints
package server

import (
	"cashflow/internal/config"
	"cashflow/internal/handlers"
	"cashflow/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Category    *handlers.CategoryHandler
	Transaction *handlers.TransactionHandler
	Health      *handlers.HealthCheckHandler
}

// New builds the echo server. requireAuth guards every route except
// sign-up, sign-in, /health and /metrics
func New(cfg *config.Config, h Handlers, requireAuth echo.MiddlewareFunc, limiter *middleware.IPRateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders:    []string{middleware.TraceIDHeader},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit("1M"))

	RegisterRoutes(e, h, requireAuth, middleware.RateLimiter(limiter))

	return e
}

// RegisterRoutes mounts the API on e
func RegisterRoutes(e *echo.Echo, h Handlers, requireAuth, rateLimit echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth", rateLimit)
	auth.POST("/sign-up", h.Auth.SignUp)
	auth.POST("/sign-in", h.Auth.SignIn)
	auth.POST("/sign-out", h.Auth.SignOut, requireAuth)

	users := api.Group("/users", requireAuth)
	users.GET("/me", h.User.GetMe)
	users.DELETE("/me", h.User.DeleteMe)

	categories := api.Group("/categories", requireAuth)
	categories.POST("", h.Category.Create)
	categories.GET("", h.Category.List)
	categories.GET("/:id", h.Category.Get)
	categories.PATCH("/:id", h.Category.Update)
	categories.DELETE("/:id", h.Category.Delete)

	transactions := api.Group("/transactions", requireAuth)
	transactions.POST("", h.Transaction.Create)
	transactions.GET("", h.Transaction.List)
	transactions.GET("/analytics/financial", h.Transaction.FinancialAnalytics)
	transactions.GET("/analytics/categories", h.Transaction.CategoryAnalytics)
	transactions.GET("/:id", h.Transaction.Get)
	transactions.DELETE("/:id", h.Transaction.Delete)
}
