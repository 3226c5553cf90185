package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cashflow/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Pinger is a dependency whose reachability is reported by /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    *gorm.DB
	cache Pinger
}

// NewHealthCheckHandler creates a new health check handler. cache may be nil
func NewHealthCheckHandler(db *gorm.DB, cache Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, cache: cache}
}

// HealthCheck reports database and cache connectivity
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,cache=string}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Health check database ping failed", "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	// the cache is optional: a failing cache degrades the service but does not take it down
	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "Health check cache ping failed", "error", err)
			cacheStatus = "unavailable"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"cache":  cacheStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
