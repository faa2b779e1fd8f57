package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *PanicRecoveryTestSuite) run(traceID string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	wrapped := PanicRecovery()(h)
	s.NotPanics(func() { _ = wrapped(c) })
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesSystemError() {
	rec := s.run("trace-77", func(c echo.Context) error {
		panic("boom")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("trace-77", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDFallsBackToUnknown() {
	rec := s.run("", func(c echo.Context) error {
		panic("boom")
	})

	var body errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestHealthyHandlerPassesThrough() {
	rec := s.run("trace-77", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestRecoversFromAnyPanicValue() {
	for _, cause := range []any{"text", 42, struct{ reason string }{"bad"}, nil} {
		rec := s.run("trace-77", func(c echo.Context) error {
			panic(cause)
		})
		s.Equal(http.StatusInternalServerError, rec.Code)
	}
}
