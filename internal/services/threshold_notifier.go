package services

import (
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// thresholdNotifier implements ThresholdNotifierInterface. Crossings are
// edge-triggered: each scope's previous percentage is persisted, and a
// boundary fires only when the fresh value moves from below it to at or
// above it. Re-evaluating an unchanged over-threshold month emits nothing;
// dipping below a boundary and rising past it again reports anew.
type thresholdNotifier struct {
	stateRepo  repositories.ThresholdStateRepositoryInterface
	emitter    NotificationEmitterInterface
	boundaries []float64
	metrics    MetricsRecorderInterface
}

// NewThresholdNotifier creates a new threshold notifier. Boundaries are
// percentages in ascending order, typically 80 and 100.
func NewThresholdNotifier(
	stateRepo repositories.ThresholdStateRepositoryInterface,
	emitter NotificationEmitterInterface,
	boundaries []float64,
	metrics MetricsRecorderInterface,
) ThresholdNotifierInterface {
	return &thresholdNotifier{
		stateRepo:  stateRepo,
		emitter:    emitter,
		boundaries: boundaries,
		metrics:    metrics,
	}
}

// Evaluate inspects one aggregation result and emits the warnings for
// every boundary crossed upward since the previous evaluation of the same
// period. Returns the notifications emitted.
func (t *thresholdNotifier) Evaluate(userID uuid.UUID, summary *models.BudgetSummary) ([]models.Notification, error) {
	if !summary.HasBudget {
		return nil, nil
	}

	previous, err := t.stateRepo.GetForPeriod(userID, summary.Month, summary.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load threshold states: %w", err)
	}

	var emitted []models.Notification

	notifications := t.crossings(userID, summary, models.ThresholdScopeTotal,
		previous[models.ThresholdScopeTotal], summary.TotalPercentUsed)
	emitted = append(emitted, notifications...)
	if err := t.record(userID, summary, models.ThresholdScopeTotal, summary.TotalPercentUsed); err != nil {
		return emitted, err
	}

	for i := range summary.CategoryStats {
		stat := &summary.CategoryStats[i]
		notifications := t.crossings(userID, summary, stat.Category,
			previous[stat.Category], stat.PercentUsed)
		emitted = append(emitted, notifications...)
		if err := t.record(userID, summary, stat.Category, stat.PercentUsed); err != nil {
			return emitted, err
		}
	}

	for i := range emitted {
		if err := t.emitter.Emit(&emitted[i]); err != nil {
			return emitted, fmt.Errorf("failed to emit notification: %w", err)
		}
		t.metrics.IncrementCounter("notifications_emitted", map[string]string{
			"type": emitted[i].Type,
		})
	}

	if len(emitted) > 0 {
		slog.Info("budget warnings emitted",
			"user_id", userID,
			"month", summary.Month,
			"year", summary.Year,
			"count", len(emitted))
	}

	return emitted, nil
}

// crossings returns one warning per boundary the percentage moved past
// upward. A scope never seen before has previous 0, so a fresh month that
// is already over a boundary reports it once.
func (t *thresholdNotifier) crossings(userID uuid.UUID, summary *models.BudgetSummary, scope string, previous, current float64) []models.Notification {
	var notifications []models.Notification

	for _, boundary := range t.boundaries {
		if previous >= boundary || current < boundary {
			continue
		}

		notificationType := models.NotificationTypeBudgetWarning
		message := fmt.Sprintf("Budget for %02d/%d has reached %.0f%% (now at %.1f%%)",
			summary.Month, summary.Year, boundary, current)
		if scope != models.ThresholdScopeTotal {
			notificationType = models.NotificationTypeBudgetCategoryWarning
			message = fmt.Sprintf("Category %q for %02d/%d has reached %.0f%% of its allocation (now at %.1f%%)",
				scope, summary.Month, summary.Year, boundary, current)
		}

		notifications = append(notifications, models.Notification{
			UserID:  userID,
			Type:    notificationType,
			Message: message,
			Metadata: models.JSONBMap{
				"scope":    scope,
				"boundary": boundary,
				"percent":  current,
				"month":    summary.Month,
				"year":     summary.Year,
			},
		})
	}

	return notifications
}

// record persists the freshly observed percentage for the scope
func (t *thresholdNotifier) record(userID uuid.UUID, summary *models.BudgetSummary, scope string, percent float64) error {
	if err := t.stateRepo.UpsertPercent(userID, summary.Month, summary.Year, scope, percent); err != nil {
		return fmt.Errorf("failed to record threshold state: %w", err)
	}
	return nil
}
