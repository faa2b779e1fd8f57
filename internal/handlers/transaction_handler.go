package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a new income or expense entry
// @Summary Create transaction
// @Description Record an income or expense. Recurring requests also register the monthly series this entry opens.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=models.Transaction} "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or TRANSACTION_002 - Invalid amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Savings goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, apierrors.TransactionInvalidType)
		case errors.Is(err, models.ErrInvalidCategory):
			return SendError(c, apierrors.TransactionUnknownCategory)
		case errors.Is(err, models.ErrInvalidCurrency):
			return SendError(c, apierrors.TransactionInvalidCurrency)
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.TransactionInvalidAmount)
		case errors.Is(err, services.ErrInvalidExchangeRate):
			return SendError(c, apierrors.TransactionInvalidCurrency, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrInvalidDate):
			return SendError(c, apierrors.ValidationInvalidDate)
		case errors.Is(err, services.ErrInvalidGoalID):
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
		case errors.Is(err, repositories.ErrGoalNotFound):
			return SendError(c, apierrors.GoalNotFound)
		case errors.Is(err, models.ErrInvalidRecurringDay):
			return SendError(c, apierrors.RecurringInvalidDay)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "Transaction created",
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Description Retrieve one of the caller's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.Transaction} "Transaction"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return SendError(c, apierrors.TransactionNotFound)
		case errors.Is(err, services.ErrForbidden):
			return SendError(c, apierrors.AuthInsufficientPermission)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: transaction})
}

// ListTransactions retrieves the caller's transaction history
// @Summary List transactions
// @Description Retrieve the caller's transactions, newest first, with offset pagination
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Number of results per page (max 200)" default(50)
// @Success 200 {object} SuccessResponse{data=[]models.Transaction} "Transaction history"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": offset,
			"limit":  limit,
		},
	})
}

// UpdateTransaction edits a transaction's category, description, or date
// @Summary Update transaction
// @Description Edit the descriptive fields of one of the caller's transactions. Amounts and currency are fixed at creation.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=models.Transaction} "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return SendError(c, apierrors.TransactionNotFound)
		case errors.Is(err, services.ErrForbidden):
			return SendError(c, apierrors.AuthInsufficientPermission)
		case errors.Is(err, models.ErrInvalidCategory):
			return SendError(c, apierrors.TransactionUnknownCategory)
		case errors.Is(err, services.ErrInvalidDate):
			return SendError(c, apierrors.ValidationInvalidDate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    transaction,
		Message: "Transaction updated",
	})
}

// DeleteTransaction removes a single transaction
// @Summary Delete transaction
// @Description Delete one of the caller's transactions. Goal contributions are reversed.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return SendError(c, apierrors.TransactionNotFound)
		case errors.Is(err, services.ErrForbidden):
			return SendError(c, apierrors.AuthInsufficientPermission)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}
