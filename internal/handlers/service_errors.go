package handlers

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"cashflow/internal/analytics"
	"cashflow/internal/errors"
	"cashflow/internal/models"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
)

// handleServiceError maps service layer errors to API error responses.
// Anything unrecognised becomes SYSTEM_001 and is logged with the trace ID
func handleServiceError(c echo.Context, err error) error {
	var refErr *services.CategoryReferenceError

	switch {
	case stderrors.Is(err, analytics.ErrInvalidDateFormat):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(detailOf(err, analytics.ErrInvalidDateFormat)))
	case stderrors.Is(err, analytics.ErrInvalidDateRange):
		return SendError(c, errors.ValidationInvalidDateRange, errors.WithDetails(detailOf(err, analytics.ErrInvalidDateRange)))
	case stderrors.As(err, &refErr):
		return SendError(c, errors.CategoryReferenceInvalid, errors.WithDetails(refErr.Error()))
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryAlreadyExists):
		return SendError(c, errors.CategoryAlreadyExists)
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, models.ErrInvalidAmount), stderrors.Is(err, models.ErrAmountPrecision):
		return SendError(c, errors.ValidationInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidCategoryType), stderrors.Is(err, models.ErrCategoryNameEmpty):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	slog.ErrorContext(c.Request().Context(), "Unhandled service error",
		"error", err,
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path)
	return SendSystemError(c, err)
}

// detailOf strips the sentinel prefix so the detail reads like "startDate must be ..."
func detailOf(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
