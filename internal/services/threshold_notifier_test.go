package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ThresholdNotifierSuite defines the test suite for ThresholdNotifierInterface
type ThresholdNotifierSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	stateRepo  *repository_mocks.MockThresholdStateRepositoryInterface
	emitter    *service_mocks.MockNotificationEmitterInterface
	metrics    *service_mocks.MockMetricsRecorderInterface
	notifier   ThresholdNotifierInterface
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *ThresholdNotifierSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.stateRepo = repository_mocks.NewMockThresholdStateRepositoryInterface(s.ctrl)
	s.emitter = service_mocks.NewMockNotificationEmitterInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.notifier = NewThresholdNotifier(s.stateRepo, s.emitter, []float64{80, 100}, s.metrics)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *ThresholdNotifierSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestThresholdNotifierSuite runs the test suite
func TestThresholdNotifierSuite(t *testing.T) {
	suite.Run(t, new(ThresholdNotifierSuite))
}

func (s *ThresholdNotifierSuite) summary(totalPercent float64, stats ...models.CategoryStat) *models.BudgetSummary {
	return &models.BudgetSummary{
		Month:            3,
		Year:             2025,
		HasBudget:        true,
		DisplayCurrency:  models.BaseCurrency,
		TotalBudget:      decimal.NewFromInt(10_000_000),
		TotalPercentUsed: totalPercent,
		CategoryStats:    stats,
	}
}

func (s *ThresholdNotifierSuite) TestEvaluate_NoBudgetEmitsNothing() {
	emitted, err := s.notifier.Evaluate(s.testUserID, models.EmptyBudgetSummary(3, 2025))

	s.NoError(err)
	s.Empty(emitted)
}

func (s *ThresholdNotifierSuite) TestEvaluate_UpwardCrossingEmitsOnce() {
	// 79 last time, 81 now: the 80 boundary fires, 100 does not.
	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{models.ThresholdScopeTotal: 79}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 81.0).
		Return(nil)
	s.emitter.EXPECT().Emit(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		s.Equal(models.NotificationTypeBudgetWarning, n.Type)
		s.Equal(80.0, n.Metadata["boundary"])
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("notifications_emitted", gomock.Any())

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(81))

	s.NoError(err)
	s.Len(emitted, 1)
}

func (s *ThresholdNotifierSuite) TestEvaluate_AlreadyOverEmitsNothing() {
	// 81 last time, 95 now: no boundary was newly crossed.
	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{models.ThresholdScopeTotal: 81}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 95.0).
		Return(nil)

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(95))

	s.NoError(err)
	s.Empty(emitted)
}

func (s *ThresholdNotifierSuite) TestEvaluate_FreshPeriodOverBothBoundaries() {
	// No prior state: previous is 0 for every scope and both fire.
	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 120.0).
		Return(nil)
	s.emitter.EXPECT().Emit(gomock.Any()).Return(nil).Times(2)
	s.metrics.EXPECT().IncrementCounter("notifications_emitted", gomock.Any()).Times(2)

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(120))

	s.NoError(err)
	s.Len(emitted, 2)
	s.Equal(80.0, emitted[0].Metadata["boundary"])
	s.Equal(100.0, emitted[1].Metadata["boundary"])
}

func (s *ThresholdNotifierSuite) TestEvaluate_ReCrossAfterDropReportsAgain() {
	// Dropped to 60 after an earlier 85, now back at 90: 80 fires anew.
	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{models.ThresholdScopeTotal: 60}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 90.0).
		Return(nil)
	s.emitter.EXPECT().Emit(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("notifications_emitted", gomock.Any())

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(90))

	s.NoError(err)
	s.Len(emitted, 1)
}

func (s *ThresholdNotifierSuite) TestEvaluate_CategoryScopeTrackedIndependently() {
	// The month total sits below every boundary while one category crosses.
	stat := models.CategoryStat{Category: models.CategoryFood, PercentUsed: 85, IsOver: false}

	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{models.ThresholdScopeTotal: 30, models.CategoryFood: 70}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 40.0).
		Return(nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.CategoryFood, 85.0).
		Return(nil)
	s.emitter.EXPECT().Emit(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		s.Equal(models.NotificationTypeBudgetCategoryWarning, n.Type)
		s.Equal(models.CategoryFood, n.Metadata["scope"])
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("notifications_emitted", gomock.Any())

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(40, stat))

	s.NoError(err)
	s.Len(emitted, 1)
}

func (s *ThresholdNotifierSuite) TestEvaluate_ExactBoundaryCounts() {
	// Landing exactly on 100 crosses it.
	s.stateRepo.EXPECT().GetForPeriod(s.testUserID, 3, 2025).
		Return(map[string]float64{models.ThresholdScopeTotal: 99}, nil)
	s.stateRepo.EXPECT().UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 100.0).
		Return(nil)
	s.emitter.EXPECT().Emit(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("notifications_emitted", gomock.Any())

	emitted, err := s.notifier.Evaluate(s.testUserID, s.summary(100))

	s.NoError(err)
	s.Len(emitted, 1)
	s.Equal(100.0, emitted[0].Metadata["boundary"])
}
