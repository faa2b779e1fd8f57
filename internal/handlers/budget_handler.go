package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudgetSummary returns the aggregated budget view for one month
// @Summary Get budget summary
// @Description Aggregate the month's budget, spending, and per-category usage. Months without a budget return an empty summary, not an error.
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} SuccessResponse{data=models.BudgetSummary} "Budget summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid month or year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/summary [get]
func (h *BudgetHandler) GetBudgetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.BudgetSummaryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	summary, err := h.budgetService.GetBudgetSummary(userID, query.Month, query.Year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// UpsertBudget creates or replaces the budget for one month
// @Summary Create or replace budget
// @Description Set the month's total budget and category allocations. An existing budget for the same month is replaced wholesale.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget definition"
// @Success 200 {object} SuccessResponse{data=models.Budget} "Budget saved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_005 - Duplicate category allocation"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	budget, err := h.budgetService.CreateOrReplaceBudget(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.BudgetInvalidAmount)
		case errors.Is(err, services.ErrInvalidExchangeRate):
			return SendError(c, apierrors.BudgetInvalidCurrency, apierrors.WithDetails(err.Error()))
		case errors.Is(err, models.ErrInvalidCurrency):
			return SendError(c, apierrors.BudgetInvalidCurrency)
		case errors.Is(err, models.ErrDuplicateCategory):
			return SendError(c, apierrors.BudgetDuplicateCategory)
		case errors.Is(err, models.ErrInvalidCategory):
			return SendError(c, apierrors.BudgetUnknownCategory)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    budget,
		Message: "Budget saved",
	})
}

// DeleteBudget removes the budget for one month
// @Summary Delete budget
// @Description Remove the month's budget and its category allocations. Transactions are untouched.
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} SuccessResponse{message=string} "Budget deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget for this month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.BudgetSummaryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	if err := h.budgetService.DeleteBudget(userID, query.Month, query.Year); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget deleted"})
}
