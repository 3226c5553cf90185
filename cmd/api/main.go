package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cashflow/internal/cache"
	"cashflow/internal/config"
	"cashflow/internal/database"
	"cashflow/internal/events"
	"cashflow/internal/handlers"
	"cashflow/internal/middleware"
	"cashflow/internal/repositories"
	"cashflow/internal/server"
	"cashflow/internal/services"

	_ "github.com/lib/pq"
)

const tokenCleanupInterval = time.Hour

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations and exit: up or down")
	flag.Parse()

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			logger.Error("Migration failed", "error", err, "command", *migrateCmd)
			os.Exit(1)
		}
		logger.Info("Migrations finished", "command", *migrateCmd)
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func runMigrations(cfg *config.Config, command string) error {
	sqlDB, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	switch strings.ToLower(command) {
	case "up":
		return runner.Up()
	case "down":
		return runner.Down(1)
	default:
		return errors.New("unknown migrate command, expected up or down")
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	analyticsCache, closeCache := newAnalyticsCache(cfg, logger)
	defer closeCache()

	publisher := newEventPublisher(cfg, logger)
	defer publisher.Close()

	metrics := services.NewPrometheusMetrics()
	audit := services.NewAuditLogger(logger)

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	authService := services.NewAuthService(userRepo, blacklistRepo, passwordService, tokenService, audit, metrics)

	subject := services.NewTransactionSubject(cfg.Analytics.ObserverTimeout)
	subject.Attach(services.NewLoggingObserver(audit))
	subject.Attach(services.NewEventPublisherObserver(publisher))
	subject.Attach(services.NewMetricsObserver(metrics))

	h := server.Handlers{
		Auth:     handlers.NewAuthHandler(authService, cfg.Security.CookieSecure),
		User:     handlers.NewUserHandler(services.NewUserService(userRepo, analyticsCache, audit), cfg.Security.CookieSecure),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo, analyticsCache, audit, metrics)),
		Transaction: handlers.NewTransactionHandler(
			services.NewTransactionService(transactionRepo, categoryRepo, analyticsCache, subject, cfg.Analytics.Location),
			services.NewAnalyticsService(transactionRepo, analyticsCache, metrics, cfg.Analytics.Location),
		),
		Health: handlers.NewHealthCheckHandler(db.DB, analyticsCache),
	}

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)
	go cleanupExpiredTokens(ctx, db, logger)

	e := server.New(cfg, h, middleware.RequireAuth(tokenService, blacklistRepo), limiter)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting cashflow server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// let in-flight observers finish before the cache and broker close
	subject.Wait()
	logger.Info("Server stopped gracefully")
	return nil
}

type analyticsCache interface {
	services.AnalyticsCacheInterface
	handlers.Pinger
}

func newAnalyticsCache(cfg *config.Config, logger *slog.Logger) (analyticsCache, func()) {
	if !cfg.Redis.Enabled {
		logger.Info("Analytics cache disabled")
		return cache.NoopCache{}, func() {}
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis, cfg.Analytics.CacheTTL)
	if err != nil {
		logger.Warn("Redis unavailable, analytics cache disabled", "error", err, "addr", cfg.Redis.Addr)
		return cache.NoopCache{}, func() {}
	}

	logger.Info("Analytics cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Analytics.CacheTTL)
	guarded := services.NewGuardedCache(redisCache, services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()))
	return guarded, func() {
		if err := redisCache.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}
}

type eventPublisher interface {
	services.EventPublisherInterface
	Close() error
}

func newEventPublisher(cfg *config.Config, logger *slog.Logger) eventPublisher {
	if !cfg.AMQP.Enabled {
		logger.Info("Event publishing disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, event publishing disabled", "error", err)
		return events.NoopPublisher{}
	}

	logger.Info("Event publishing enabled", "exchange", cfg.AMQP.Exchange)
	return publisher
}

func cleanupExpiredTokens(ctx context.Context, db *database.DB, logger *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := db.CleanupExpiredTokens()
			if err != nil {
				logger.Error("Failed to cleanup expired tokens", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("Removed expired blacklisted tokens", "count", removed)
			}
		}
	}
}
