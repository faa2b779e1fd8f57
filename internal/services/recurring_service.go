package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// ErrCascadeInconsistent is returned when deleteAll cannot complete its
// goal reversal. The underlying database transaction has already rolled
// back: no occurrence was deleted and no balance changed.
var ErrCascadeInconsistent = errors.New("series deletion could not complete consistently")

// recurringService implements RecurringServiceInterface
type recurringService struct {
	seriesRepo repositories.RecurringSeriesRepositoryInterface
	txRepo     repositories.TransactionRepositoryInterface
	metrics    MetricsRecorderInterface
}

// NewRecurringService creates a new recurring transaction manager
func NewRecurringService(
	seriesRepo repositories.RecurringSeriesRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) RecurringServiceInterface {
	return &recurringService{
		seriesRepo: seriesRepo,
		txRepo:     txRepo,
		metrics:    metrics,
	}
}

// RunDailyGeneration creates today's occurrence for every active series
// due on the current day of month. On the last day of a short month the
// due window widens to 31 so a day-31 series still fires on the 28th/30th.
//
// The existence check makes repeat runs within a day no-ops; under racing
// runners the unique (group, date) index lets at most one insert win, so
// generation needs no lock.
func (s *recurringService) RunDailyGeneration(ctx context.Context, now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	minDay := now.Day()
	maxDay := now.Day()
	if now.Day() == lastDay {
		maxDay = 31
	}

	due, err := s.seriesRepo.GetActiveDueBetween(minDay, maxDay)
	if err != nil {
		return 0, fmt.Errorf("failed to load due series: %w", err)
	}

	slog.InfoContext(ctx, "processing recurring series",
		"due", len(due),
		"date", today.Format("2006-01-02"))

	created := 0
	for i := range due {
		series := &due[i]

		exists, err := s.txRepo.ExistsOccurrenceOn(series.GroupID, today)
		if err != nil {
			slog.ErrorContext(ctx, "failed to check existing occurrence",
				"group_id", series.GroupID,
				"error", err)
			continue
		}
		if exists {
			continue
		}

		occurrence := series.NewOccurrence(today)
		if err := s.txRepo.CreateWithGoalContribution(occurrence); err != nil {
			// A racing runner may have inserted between the check and the
			// create; the unique index rejects the loser. Either way the
			// series has exactly one occurrence today.
			slog.WarnContext(ctx, "occurrence insert rejected",
				"group_id", series.GroupID,
				"date", today.Format("2006-01-02"),
				"error", err)
			continue
		}

		created++
		s.metrics.IncrementCounter("recurring_occurrences_generated", map[string]string{
			"type": series.Type,
		})
		slog.InfoContext(ctx, "created occurrence from recurring series",
			"group_id", series.GroupID,
			"transaction_id", occurrence.ID,
			"category", series.Category,
			"base_amount", series.BaseAmount.String())
	}

	slog.InfoContext(ctx, "recurring generation complete",
		"created", created,
		"due", len(due))

	return created, nil
}

// Stop marks the series stopped. Past occurrences are retained unchanged
// and no future ones are generated. One-way: there is no resume. Stopping
// an already-stopped or unknown series succeeds without effect.
func (s *recurringService) Stop(userID, groupID uuid.UUID) error {
	series, err := s.seriesRepo.GetByGroupID(groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrSeriesNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load series: %w", err)
	}
	if series.UserID != userID {
		return ErrForbidden
	}
	if !series.IsActive() {
		return nil
	}

	if err := s.seriesRepo.UpdateStatus(groupID, models.RecurringStatusStopped); err != nil {
		if errors.Is(err, repositories.ErrSeriesNotFound) {
			return nil
		}
		return fmt.Errorf("failed to stop series: %w", err)
	}

	s.metrics.IncrementCounter("recurring_series_terminated", map[string]string{"mode": "stop"})
	slog.Info("recurring series stopped",
		"user_id", userID,
		"group_id", groupID)
	return nil
}

// DeleteAll removes the series and its whole history, reversing every
// goal contribution its occurrences made. All of it happens in one
// database transaction: a failure leaves the ledger and goal balances
// exactly as they were. Deleting an unknown series succeeds without
// effect.
func (s *recurringService) DeleteAll(userID, groupID uuid.UUID) error {
	series, err := s.seriesRepo.GetByGroupID(groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrSeriesNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load series: %w", err)
	}
	if series.UserID != userID {
		return ErrForbidden
	}

	deleted, reversed, err := s.seriesRepo.DeleteCascade(groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return fmt.Errorf("%w: %v", ErrCascadeInconsistent, err)
		}
		return fmt.Errorf("failed to delete series: %w", err)
	}

	s.metrics.IncrementCounter("recurring_series_terminated", map[string]string{"mode": "delete_all"})
	slog.Info("recurring series deleted",
		"user_id", userID,
		"group_id", groupID,
		"occurrences_deleted", deleted,
		"goal_amount_reversed", reversed.String())
	return nil
}

// ListSeries returns the user's series read models
func (s *recurringService) ListSeries(userID uuid.UUID) ([]models.RecurringSeriesInfo, error) {
	return s.seriesRepo.GetByUserID(userID)
}
