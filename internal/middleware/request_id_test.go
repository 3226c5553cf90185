package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(req *http.Request, inner echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.NoError(RequestID()(inner)(s.echo.NewContext(req, rec)))
	return rec
}

func (s *RequestIDTestSuite) TestGeneratesUUIDTraceID() {
	var traceID string
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		traceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, traceID)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "existing-trace-id-12345")

	rec := s.serve(req, func(c echo.Context) error {
		s.Equal("existing-trace-id-12345", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestPropagatesCorrelationIDToRequestContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-abc")

	s.serve(req, func(c echo.Context) error {
		s.Equal("trace-abc", c.Request().Context().Value(services.CorrelationIDKey))
		return c.NoContent(http.StatusOK)
	})
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
