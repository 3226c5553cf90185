package services

import (
	"context"
	"log/slog"
	"time"

	"cashflow/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace ID through service calls
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns ctx tagged with the request's trace ID
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogSignUp(ctx context.Context, userID uuid.UUID, username string) {
	al.logger.InfoContext(ctx, "user signed up",
		slog.String("event_type", "user_sign_up"),
		slog.String("user_id", userID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSignIn(ctx context.Context, userID uuid.UUID, username string) {
	al.logger.InfoContext(ctx, "user signed in",
		slog.String("event_type", "user_sign_in"),
		slog.String("user_id", userID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSignInFailed(ctx context.Context, username, reason string) {
	al.logger.WarnContext(ctx, "sign in failed",
		slog.String("event_type", "user_sign_in_failed"),
		slog.String("username", username),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSignOut(ctx context.Context, userID uuid.UUID, jti string) {
	al.logger.InfoContext(ctx, "user signed out",
		slog.String("event_type", "user_sign_out"),
		slog.String("user_id", userID.String()),
		slog.String("jti", jti),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogUserDeleted(ctx context.Context, userID uuid.UUID) {
	al.logger.WarnContext(ctx, "user deleted",
		slog.String("event_type", "user_deleted"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCategoryChange(ctx context.Context, userID, categoryID uuid.UUID, action string) {
	al.logger.InfoContext(ctx, "category changed",
		slog.String("event_type", "category_"+action),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionEvent(ctx context.Context, event string, tx *models.Transaction) {
	attrs := []slog.Attr{
		slog.String("event_type", "transaction_"+event),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("user_id", tx.UserID.String()),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.StringFixed(models.AmountScale)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if tx.CategoryID != nil {
		attrs = append(attrs, slog.String("category_id", tx.CategoryID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "transaction "+event, attrs...)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
