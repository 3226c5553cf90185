package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cashflow/internal/analytics"
	"cashflow/internal/dto"
	"cashflow/internal/models"
	"cashflow/internal/services"
	"cashflow/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler            *TransactionHandler
	echo               *echo.Echo
	userID             uuid.UUID
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	analyticsService   *service_mocks.MockAnalyticsServiceInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.analyticsService = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService, s.analyticsService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *TransactionHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *TransactionHandlerTestSuite) TestCreate_Success() {
	note := gofakeit.Sentence(4)
	category := &models.Category{ID: uuid.New(), Name: "Food", Type: models.CategoryTypeExpense}
	created := &models.Transaction{
		ID:         uuid.New(),
		UserID:     s.userID,
		CategoryID: &category.ID,
		Category:   category,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("12.34"),
		Note:       note,
		CreatedAt:  time.Now(),
	}

	s.transactionService.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
			s.True(req.Amount.Equal(decimal.RequireFromString("12.34")))
			s.Equal(category.ID.String(), *req.CategoryID)
			return created, nil
		})

	body := fmt.Sprintf(`{"type":"expense","amount":12.34,"categoryId":"%s","note":%q}`, category.ID, note)
	c, rec := s.newContext(http.MethodPost, "/transactions", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response struct {
		Data dto.TransactionResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(12.34, response.Data.Amount)
	s.Require().NotNil(response.Data.Category)
	s.Equal("Food", response.Data.Category.Name)
}

func (s *TransactionHandlerTestSuite) TestCreate_RejectsBadAmounts() {
	for _, amount := range []string{"0", "-5", "10.005"} {
		c, _ := s.newContext(http.MethodPost, "/transactions", `{"type":"income","amount":`+amount+`}`)
		s.Error(s.handler.Create(c), amount)
	}
}

func (s *TransactionHandlerTestSuite) TestCreate_RejectsUnknownType() {
	c, _ := s.newContext(http.MethodPost, "/transactions", `{"type":"transfer","amount":5}`)
	s.Error(s.handler.Create(c))
}

func (s *TransactionHandlerTestSuite) TestCreate_ForeignCategory() {
	categoryID := uuid.New().String()
	s.transactionService.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, &services.CategoryReferenceError{CategoryID: categoryID})

	c, rec := s.newContext(http.MethodPost, "/transactions",
		fmt.Sprintf(`{"type":"income","amount":"5","categoryId":"%s"}`, categoryID))

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATEGORY_002", s.errorCode(rec))
	s.Contains(rec.Body.String(), "category with id:"+categoryID+" does not exist")
}

func (s *TransactionHandlerTestSuite) TestList_PassesDateRange() {
	s.transactionService.EXPECT().List(s.userID, dto.TransactionListQuery{StartDate: "2024-01-01", EndDate: "2024-01-31"}).Return([]models.Transaction{
		{ID: uuid.New(), Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(100)},
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions?startDate=2024-01-01&endDate=2024-01-31", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"category":null`)
}

func (s *TransactionHandlerTestSuite) TestList_InvalidDate() {
	s.transactionService.EXPECT().List(s.userID, dto.TransactionListQuery{StartDate: "not-a-date"}).
		Return(nil, fmt.Errorf("%w: startDate must be a valid date YYYY-MM-DD", analytics.ErrInvalidDateFormat))

	c, rec := s.newContext(http.MethodGet, "/transactions?startDate=not-a-date", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.errorCode(rec))
	s.Contains(rec.Body.String(), "startDate must be a valid date YYYY-MM-DD")
}

func (s *TransactionHandlerTestSuite) TestList_PassesFiltersAndPaging() {
	categoryID := uuid.New().String()
	s.transactionService.EXPECT().List(s.userID, dto.TransactionListQuery{
		Type:       "expense",
		CategoryID: categoryID,
		Limit:      10,
		Offset:     20,
	}).Return([]models.Transaction{
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(7)},
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions?type=expense&categoryId="+categoryID+"&limit=10&offset=20", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
	var response struct {
		Meta map[string]int `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(map[string]int{"total": 1, "limit": 10, "offset": 20}, response.Meta)
}

func (s *TransactionHandlerTestSuite) TestList_RejectsBadFilters() {
	for _, target := range []string{
		"/transactions?type=transfer",
		"/transactions?categoryId=nope",
		"/transactions?limit=1000",
		"/transactions?offset=-1",
	} {
		c, _ := s.newContext(http.MethodGet, target, "")
		s.Error(s.handler.List(c), target)
	}
}

func (s *TransactionHandlerTestSuite) TestList_NonNumericLimit() {
	c, rec := s.newContext(http.MethodGet, "/transactions?limit=ten", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestGet_NotFound() {
	id := uuid.New()
	s.transactionService.EXPECT().Get(s.userID, id).Return(nil, services.ErrTransactionNotFound)

	c, rec := s.newContext(http.MethodGet, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", s.errorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestDelete() {
	id := uuid.New()
	s.transactionService.EXPECT().Delete(gomock.Any(), s.userID, id).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestFinancialAnalytics() {
	summary := &models.FinancialSummary{
		TotalIncome:       decimal.NewFromInt(100),
		TotalExpense:      decimal.NewFromInt(50),
		Balance:           decimal.NewFromInt(50),
		IncomeCount:       1,
		ExpenseCount:      1,
		TotalTransactions: 2,
		CategoryAnalytics: []models.CategoryAnalytics{{
			CategoryName:     analytics.UncategorizedName,
			TotalAmount:      decimal.NewFromInt(150),
			TransactionCount: 2,
			Percentage:       decimal.NewFromInt(100),
		}},
	}
	s.analyticsService.EXPECT().GetFinancialAnalytics(gomock.Any(), s.userID, "", "").Return(summary, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions/analytics/financial", "")

	s.NoError(s.handler.FinancialAnalytics(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{
		"totalIncome":100,"totalExpense":50,"balance":50,
		"incomeCount":1,"expenseCount":1,"totalTransactions":2,
		"categoryAnalytics":[{"categoryId":null,"categoryName":"Uncategorized","categoryType":null,
			"totalAmount":150,"transactionCount":2,"percentage":100}]}}`, rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestFinancialAnalytics_EmptyBreakdownIsArray() {
	s.analyticsService.EXPECT().GetFinancialAnalytics(gomock.Any(), s.userID, "", "").
		Return(&models.FinancialSummary{CategoryAnalytics: []models.CategoryAnalytics{}}, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions/analytics/financial", "")

	s.NoError(s.handler.FinancialAnalytics(c))
	s.Contains(rec.Body.String(), `"categoryAnalytics":[]`)
}

func (s *TransactionHandlerTestSuite) TestFinancialAnalytics_InvalidRange() {
	s.analyticsService.EXPECT().GetFinancialAnalytics(gomock.Any(), s.userID, "2024-06-01", "2024-01-01").
		Return(nil, fmt.Errorf("%w: startDate 2024-06-01 is after endDate 2024-01-01", analytics.ErrInvalidDateRange))

	c, rec := s.newContext(http.MethodGet, "/transactions/analytics/financial?startDate=2024-06-01&endDate=2024-01-01", "")

	s.NoError(s.handler.FinancialAnalytics(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", s.errorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestCategoryAnalytics() {
	categoryID := uuid.New()
	expense := models.CategoryTypeExpense
	s.analyticsService.EXPECT().GetCategoryAnalytics(gomock.Any(), s.userID, "2024-01-01", "").
		Return([]models.CategoryAnalytics{{
			CategoryID:       &categoryID,
			CategoryName:     "Food",
			CategoryType:     &expense,
			TotalAmount:      decimal.NewFromInt(50),
			TransactionCount: 2,
			Percentage:       decimal.RequireFromString("50.00"),
		}}, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions/analytics/categories?startDate=2024-01-01", "")

	s.NoError(s.handler.CategoryAnalytics(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []dto.CategoryAnalyticsResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Data, 1)
	s.Equal(categoryID.String(), *response.Data[0].CategoryID)
	s.Equal("expense", *response.Data[0].CategoryType)
	s.Equal(50.0, response.Data[0].Percentage)
}
