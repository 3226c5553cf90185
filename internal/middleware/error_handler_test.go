package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashflow/internal/dto"
	apierrors "cashflow/internal/errors"
	"cashflow/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) context(traceID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.context("test-trace-id")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal("SYSTEM_005", response.Error.Code)
	s.Equal("Resource not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	c, rec := s.context("trace")
	err := validation.GetValidator().Struct(dto.SignUpRequest{Username: "a"})
	s.Require().Error(err)

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decode(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"password is required",
		"username must be at least 3 characters",
	}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorIsHidden() {
	c, rec := s.context("test-trace-id")

	CustomHTTPErrorHandler(errors.New("pq: connection refused"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
	response := s.decode(rec)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	c, rec := s.context("")

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.context("")
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status       int
		expectedCode apierrors.ErrorCode
	}{
		{http.StatusBadRequest, apierrors.ValidationGeneral},
		{http.StatusUnauthorized, apierrors.AuthMissingToken},
		{http.StatusNotFound, apierrors.SystemRouteNotFound},
		{http.StatusMethodNotAllowed, apierrors.ValidationGeneral},
		{http.StatusTooManyRequests, apierrors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, apierrors.SystemServiceUnavailable},
		{http.StatusInternalServerError, apierrors.SystemInternalError},
		{http.StatusTeapot, apierrors.SystemInternalError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expectedCode, mapHTTPStatusToErrorCode(tc.status), http.StatusText(tc.status))
	}
}
