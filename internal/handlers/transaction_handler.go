package handlers

import (
	"net/http"

	"cashflow/internal/dto"
	"cashflow/internal/errors"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction and analytics endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	analyticsService   services.AnalyticsServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		analyticsService:   analyticsService,
	}
}

// Create records a transaction
// @Summary Create transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or CATEGORY_002"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction created successfully",
	})
}

// List returns the user's transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param type query string false "income or expense"
// @Param categoryId query string false "Category ID"
// @Param limit query int false "Page size up to 500, 0 returns all"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} SuccessResponse{data=[]dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 or VALIDATION_004"
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.TransactionListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return err
	}

	transactions, err := h.transactionService.List(userID, query)
	if err != nil {
		return handleServiceError(c, err)
	}

	response := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		response = append(response, toTransactionResponse(&transactions[i]))
	}

	meta := map[string]interface{}{"total": len(response)}
	if query.Limit > 0 {
		meta["limit"] = query.Limit
		meta["offset"] = query.Offset
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: response,
		Meta: meta,
	})
}

// Get returns one transaction
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse}
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	transaction, err := h.transactionService.Get(userID, transactionID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toTransactionResponse(transaction)})
}

// Delete removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.transactionService.Delete(c.Request().Context(), userID, transactionID); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FinancialAnalytics returns totals, counts and the category breakdown
// @Summary Financial summary
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} SuccessResponse{data=dto.FinancialAnalyticsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 or VALIDATION_004"
// @Router /transactions/analytics/financial [get]
func (h *TransactionHandler) FinancialAnalytics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DateRangeQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	summary, err := h.analyticsService.GetFinancialAnalytics(c.Request().Context(), userID, query.StartDate, query.EndDate)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toFinancialAnalyticsResponse(summary)})
}

// CategoryAnalytics returns only the category breakdown
// @Summary Category breakdown
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} SuccessResponse{data=[]dto.CategoryAnalyticsResponse}
// @Router /transactions/analytics/categories [get]
func (h *TransactionHandler) CategoryAnalytics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DateRangeQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	entries, err := h.analyticsService.GetCategoryAnalytics(c.Request().Context(), userID, query.StartDate, query.EndDate)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toCategoryAnalyticsResponses(entries)})
}
