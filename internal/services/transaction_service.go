package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidGoalID = errors.New("goal ID must be a valid UUID")
	ErrForbidden     = errors.New("resource belongs to another user")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	txRepo   repositories.TransactionRepositoryInterface
	goalRepo repositories.GoalRepositoryInterface
	currency CurrencyNormalizerInterface
	metrics  MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	currency CurrencyNormalizerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		txRepo:   txRepo,
		goalRepo: goalRepo,
		currency: currency,
		metrics:  metrics,
	}
}

// CreateTransaction records an entry, normalizing the amount into the base
// currency at the rate captured now. A recurring request also registers
// the series this entry opens; the entry itself is the first occurrence.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if !models.IsValidTransactionType(req.Type) {
		return nil, models.ErrInvalidTransactionType
	}
	if !models.IsValidCategory(req.Category) {
		return nil, models.ErrInvalidCategory
	}
	if !models.IsValidCurrency(req.Currency) {
		return nil, models.ErrInvalidCurrency
	}

	amount, err := parsePositiveDecimal(req.Amount)
	if err != nil {
		return nil, err
	}
	rate, err := resolveRate(req.Currency, req.ExchangeRate)
	if err != nil {
		return nil, err
	}
	baseAmount, err := s.currency.ToBase(amount, req.Currency, rate)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed.UTC()
	}

	var goalID *uuid.UUID
	if req.GoalID != "" {
		parsed, err := uuid.Parse(req.GoalID)
		if err != nil {
			return nil, ErrInvalidGoalID
		}
		if _, err := s.goalRepo.GetByID(parsed); err != nil {
			return nil, err
		}
		goalID = &parsed
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Type:         req.Type,
		Amount:       amount,
		Currency:     req.Currency,
		BaseAmount:   baseAmount,
		ExchangeRate: rate,
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
		GoalID:       goalID,
	}

	var series *models.RecurringSeries
	if req.IsRecurring {
		if req.RecurringDay < 1 || req.RecurringDay > 31 {
			return nil, models.ErrInvalidRecurringDay
		}

		series = &models.RecurringSeries{
			GroupID:      uuid.New(),
			UserID:       userID,
			Status:       models.RecurringStatusActive,
			Type:         req.Type,
			Amount:       amount,
			Currency:     req.Currency,
			BaseAmount:   baseAmount,
			ExchangeRate: rate,
			Category:     req.Category,
			Description:  req.Description,
			RecurringDay: req.RecurringDay,
			GoalID:       goalID,
		}

		day := req.RecurringDay
		transaction.IsRecurring = true
		transaction.RecurringDay = &day
		transaction.RecurringGroupID = &series.GroupID
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	// Series registration and first occurrence commit or roll back
	// together; a failed insert must not leave an active series behind.
	var storeErr error
	if series != nil {
		storeErr = s.txRepo.CreateWithSeries(transaction, series)
	} else {
		storeErr = s.txRepo.CreateWithGoalContribution(transaction)
	}
	if storeErr != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", storeErr)
	}

	s.metrics.IncrementCounter("transactions_created", map[string]string{
		"type":      transaction.Type,
		"recurring": fmt.Sprintf("%t", transaction.IsRecurring),
	})

	slog.Info("transaction created",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"base_amount", transaction.BaseAmount.String(),
		"is_recurring", transaction.IsRecurring)

	return transaction, nil
}

// GetTransaction retrieves one of the user's transactions by ID
func (s *transactionService) GetTransaction(userID, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, ErrForbidden
	}
	return transaction, nil
}

// ListTransactions retrieves the user's transactions with pagination
func (s *transactionService) ListTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.txRepo.GetByUserID(userID, offset, limit)
}

// UpdateTransaction edits a transaction's descriptive fields. Monetary
// fields stay immutable because the base-currency conversion was
// snapshotted at creation and is never recomputed.
func (s *transactionService) UpdateTransaction(userID, id uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return nil, models.ErrInvalidCategory
		}
		transaction.Category = req.Category
	}
	if req.Description != "" {
		transaction.Description = req.Description
	}
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		transaction.Date = parsed.UTC()
	}

	if err := s.txRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions_updated", map[string]string{
		"type": transaction.Type,
	})

	return transaction, nil
}

// DeleteTransaction removes one of the user's transactions. Goal-linked
// entries have their contribution reversed by the repository.
func (s *transactionService) DeleteTransaction(userID, id uuid.UUID) error {
	transaction, err := s.txRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transaction.UserID != userID {
		return ErrForbidden
	}

	if err := s.txRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions_deleted", map[string]string{
		"type": transaction.Type,
	})

	slog.Info("transaction deleted",
		"user_id", userID,
		"transaction_id", id,
		"was_recurring", transaction.IsRecurring)

	return nil
}
