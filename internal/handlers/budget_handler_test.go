package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetHandlerTestSuite is the test suite for BudgetHandler
type BudgetHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockBudgetService *service_mocks.MockBudgetServiceInterface
	handler           *BudgetHandler
	echo              *echo.Echo
	testUserID        uuid.UUID
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockBudgetService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.testUserID = uuid.New()
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	errBody, ok := response["error"].(map[string]interface{})
	s.True(ok, "expected error envelope, got %s", rec.Body.String())
	code, _ := errBody["code"].(string)
	return code
}

// Test GetBudgetSummary functionality
func (s *BudgetHandlerTestSuite) TestGetBudgetSummary_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/summary?month=3&year=2025", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	summary := &models.BudgetSummary{
		Month:            3,
		Year:             2025,
		HasBudget:        true,
		DisplayCurrency:  models.BaseCurrency,
		TotalBudget:      decimal.NewFromInt(10_000_000),
		TotalSpent:       decimal.NewFromInt(2_500_000),
		TotalPercentUsed: 25,
	}
	s.mockBudgetService.EXPECT().GetBudgetSummary(s.testUserID, 3, 2025).Return(summary, nil)

	s.NoError(s.handler.GetBudgetSummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]interface{})
	s.True(ok)
	s.Equal(true, data["has_budget"])
	s.InDelta(25.0, data["total_percent_used"], 0.0001)
}

func (s *BudgetHandlerTestSuite) TestGetBudgetSummary_MissingAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/summary?month=3&year=2025", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetBudgetSummary(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apierrors.AuthMissingToken), s.errorCode(rec))
}

// Test UpsertBudget functionality
func (s *BudgetHandlerTestSuite) TestUpsertBudget_Success() {
	body := `{
		"month": 3,
		"year": 2025,
		"currency": "VND",
		"amount": "10000000",
		"categories": [{"category": "food", "amount": "4000000"}]
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	budget := &models.Budget{
		ID:               uuid.New(),
		UserID:           s.testUserID,
		Month:            3,
		Year:             2025,
		OriginalCurrency: models.BaseCurrency,
		TotalBudget:      decimal.NewFromInt(10_000_000),
	}
	s.mockBudgetService.EXPECT().CreateOrReplaceBudget(s.testUserID, gomock.Any()).Return(budget, nil)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_DuplicateCategory() {
	body := `{
		"month": 3,
		"year": 2025,
		"currency": "VND",
		"amount": "10000000",
		"categories": [
			{"category": "food", "amount": "1000000"},
			{"category": "food", "amount": "2000000"}
		]
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	s.mockBudgetService.EXPECT().CreateOrReplaceBudget(s.testUserID, gomock.Any()).
		Return(nil, models.ErrDuplicateCategory)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal(string(apierrors.BudgetDuplicateCategory), s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_ValidationRejectsBadCurrency() {
	body := `{
		"month": 3,
		"year": 2025,
		"currency": "XYZ",
		"amount": "10000000"
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	err := s.handler.UpsertBudget(c)

	// The binder's validator rejects before the service is reached
	s.Error(err)
}

// Test DeleteBudget functionality
func (s *BudgetHandlerTestSuite) TestDeleteBudget_Success() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets?month=3&year=2025", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	s.mockBudgetService.EXPECT().DeleteBudget(s.testUserID, 3, 2025).Return(nil)

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets?month=3&year=2025", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	s.mockBudgetService.EXPECT().DeleteBudget(s.testUserID, 3, 2025).
		Return(repositories.ErrBudgetNotFound)

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.BudgetNotFound), s.errorCode(rec))
}
