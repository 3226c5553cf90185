package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cashflow/internal/cache"
	"cashflow/internal/config"
	"cashflow/internal/database"
	"cashflow/internal/events"
	"cashflow/internal/handlers"
	"cashflow/internal/middleware"
	"cashflow/internal/repositories"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type ServerTestSuite struct {
	suite.Suite
	db      *database.DB
	subject *services.TransactionSubject
	e       *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test", CORSAllowOrigins: []string{"*"}},
		JWT: config.JWTConfig{
			AccessTokenDuration: time.Hour,
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "cashflow-test",
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := services.NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())
	audit := services.NewAuditLogger(logger)
	analyticsCache := cache.NoopCache{}

	userRepo := repositories.NewUserRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(s.db.DB)

	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, blacklistRepo, services.NewPasswordService(bcrypt.MinCost), tokenService, audit, metrics)

	s.subject = services.NewTransactionSubject(time.Second)
	s.subject.Attach(services.NewLoggingObserver(audit))
	s.subject.Attach(services.NewEventPublisherObserver(events.NoopPublisher{}))
	s.subject.Attach(services.NewMetricsObserver(metrics))

	h := Handlers{
		Auth:     handlers.NewAuthHandler(authService, false),
		User:     handlers.NewUserHandler(services.NewUserService(userRepo, analyticsCache, audit), false),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo, analyticsCache, audit, metrics)),
		Transaction: handlers.NewTransactionHandler(
			services.NewTransactionService(transactionRepo, categoryRepo, analyticsCache, s.subject, time.UTC),
			services.NewAnalyticsService(transactionRepo, analyticsCache, metrics, time.UTC),
		),
		Health: handlers.NewHealthCheckHandler(s.db.DB, analyticsCache),
	}

	s.e = New(cfg, h, middleware.RequireAuth(tokenService, blacklistRepo), middleware.NewIPRateLimiter(1000, 1000))
}

func (s *ServerTestSuite) TearDownTest() {
	s.subject.Wait()
	_ = s.db.Close()
}

func (s *ServerTestSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeData(rec *httptest.ResponseRecorder, into interface{}) {
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, into))
}

func (s *ServerTestSuite) signUp(username string) string {
	rec := s.do(http.MethodPost, "/api/v1/auth/sign-up", "", `{"username":"`+username+`","password":"secret1"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var auth struct {
		Token struct {
			AccessToken string `json:"accessToken"`
		} `json:"token"`
	}
	s.decodeData(rec, &auth)
	return auth.Token.AccessToken
}

func (s *ServerTestSuite) TestFinancialAnalyticsFlow() {
	token := s.signUp("john_doe")

	rec := s.do(http.MethodPost, "/api/v1/categories", token, `{"name":"Food","type":"expense"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var food struct {
		ID string `json:"id"`
	}
	s.decodeData(rec, &food)

	for _, body := range []string{
		`{"type":"income","amount":100}`,
		`{"type":"expense","amount":30,"categoryId":"` + food.ID + `"}`,
		`{"type":"expense","amount":"20.00","categoryId":"` + food.ID + `"}`,
	} {
		rec = s.do(http.MethodPost, "/api/v1/transactions", token, body)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodGet, "/api/v1/transactions/analytics/financial", token, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.JSONEq(`{"data":{
		"totalIncome":100,"totalExpense":50,"balance":50,
		"incomeCount":1,"expenseCount":2,"totalTransactions":3,
		"categoryAnalytics":[
			{"categoryId":null,"categoryName":"Uncategorized","categoryType":null,"totalAmount":100,"transactionCount":1,"percentage":66.67},
			{"categoryId":"`+food.ID+`","categoryName":"Food","categoryType":"expense","totalAmount":50,"transactionCount":2,"percentage":100}
		]}}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/transactions/analytics/categories?startDate=2000-01-01", token, "")
	s.Equal(http.StatusOK, rec.Code)
	var entries []map[string]interface{}
	s.decodeData(rec, &entries)
	s.Len(entries, 2)

	rec = s.do(http.MethodGet, "/api/v1/transactions", token, "")
	s.Equal(http.StatusOK, rec.Code)
	var listed []map[string]interface{}
	s.decodeData(rec, &listed)
	s.Len(listed, 3)

	rec = s.do(http.MethodGet, "/api/v1/transactions?type=expense&categoryId="+food.ID+"&limit=1", token, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decodeData(rec, &listed)
	s.Require().Len(listed, 1)
	s.Equal("expense", listed[0]["type"])

	rec = s.do(http.MethodGet, "/api/v1/transactions?limit=1000", token, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestDateValidation() {
	token := s.signUp("jane_doe")

	rec := s.do(http.MethodGet, "/api/v1/transactions/analytics/financial?startDate=not-a-date", token, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")

	rec = s.do(http.MethodGet, "/api/v1/transactions/analytics/financial?startDate=2024-06-01&endDate=2024-01-01", token, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_004")
}

func (s *ServerTestSuite) TestEmptyAnalytics() {
	token := s.signUp("empty_user")

	rec := s.do(http.MethodGet, "/api/v1/transactions/analytics/financial", token, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"totalIncome":0,"totalExpense":0,"balance":0,"incomeCount":0,"expenseCount":0,
		"totalTransactions":0,"categoryAnalytics":[]}}`, rec.Body.String())
}

func (s *ServerTestSuite) TestUsersAreIsolated() {
	owner := s.signUp("owner_user")
	intruder := s.signUp("intruder")

	rec := s.do(http.MethodPost, "/api/v1/categories", owner, `{"name":"Rent","type":"expense"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var rent struct {
		ID string `json:"id"`
	}
	s.decodeData(rec, &rent)

	rec = s.do(http.MethodGet, "/api/v1/categories/"+rent.ID, intruder, "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/transactions", intruder, `{"type":"expense","amount":5,"categoryId":"`+rent.ID+`"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "category with id:"+rent.ID+" does not exist")
}

func (s *ServerTestSuite) TestSignOutRevokesToken() {
	token := s.signUp("leaving_user")

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/users/me", token, "").Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/api/v1/auth/sign-out", token, "").Code)

	rec := s.do(http.MethodGet, "/api/v1/users/me", token, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *ServerTestSuite) TestDuplicateSignUp() {
	s.signUp("taken_name")

	rec := s.do(http.MethodPost, "/api/v1/auth/sign-up", "", `{"username":"taken_name","password":"secret1"}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestValidationErrorEnvelope() {
	rec := s.do(http.MethodPost, "/api/v1/auth/sign-up", "", `{"username":"a b","password":"1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *ServerTestSuite) TestUnauthenticated() {
	rec := s.do(http.MethodGet, "/api/v1/transactions", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nothing-here", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_005")
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/metrics", "", "").Code)
}
