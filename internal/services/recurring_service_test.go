package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RecurringServiceSuite defines the test suite for RecurringServiceInterface
type RecurringServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	seriesRepo *repository_mocks.MockRecurringSeriesRepositoryInterface
	txRepo     *repository_mocks.MockTransactionRepositoryInterface
	metrics    *service_mocks.MockMetricsRecorderInterface
	service    RecurringServiceInterface
	ctx        context.Context
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *RecurringServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.seriesRepo = repository_mocks.NewMockRecurringSeriesRepositoryInterface(s.ctrl)
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewRecurringService(s.seriesRepo, s.txRepo, s.metrics)
	s.ctx = context.Background()
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *RecurringServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestRecurringServiceSuite runs the test suite
func TestRecurringServiceSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceSuite))
}

func (s *RecurringServiceSuite) activeSeries(day int) models.RecurringSeries {
	return models.RecurringSeries{
		GroupID:      uuid.New(),
		UserID:       s.testUserID,
		Status:       models.RecurringStatusActive,
		Type:         models.TransactionTypeExpense,
		Amount:       decimal.NewFromInt(200_000),
		Currency:     models.BaseCurrency,
		BaseAmount:   decimal.NewFromInt(200_000),
		ExchangeRate: decimal.NewFromInt(1),
		Category:     models.CategoryHousing,
		RecurringDay: day,
	}
}

// Test RunDailyGeneration functionality
func (s *RecurringServiceSuite) TestRunDailyGeneration_CreatesDueOccurrence() {
	now := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	series := s.activeSeries(15)

	s.seriesRepo.EXPECT().GetActiveDueBetween(15, 15).
		Return([]models.RecurringSeries{series}, nil)
	s.txRepo.EXPECT().ExistsOccurrenceOn(series.GroupID, today).Return(false, nil)
	s.txRepo.EXPECT().CreateWithGoalContribution(gomock.Any()).DoAndReturn(
		func(tx *models.Transaction) error {
			s.Equal(today, tx.Date)
			s.True(tx.IsRecurring)
			s.Equal(series.GroupID, *tx.RecurringGroupID)
			s.True(tx.BaseAmount.Equal(series.BaseAmount))
			return nil
		})
	s.metrics.EXPECT().IncrementCounter("recurring_occurrences_generated", gomock.Any())

	created, err := s.service.RunDailyGeneration(s.ctx, now)

	s.NoError(err)
	s.Equal(1, created)
}

func (s *RecurringServiceSuite) TestRunDailyGeneration_RepeatRunIsNoOp() {
	now := time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	series := s.activeSeries(15)

	s.seriesRepo.EXPECT().GetActiveDueBetween(15, 15).
		Return([]models.RecurringSeries{series}, nil)
	s.txRepo.EXPECT().ExistsOccurrenceOn(series.GroupID, today).Return(true, nil)

	created, err := s.service.RunDailyGeneration(s.ctx, now)

	s.NoError(err)
	s.Equal(0, created)
}

func (s *RecurringServiceSuite) TestRunDailyGeneration_ShortMonthWidensWindow() {
	// Feb 28 is the last day of the month in 2025: a day-31 series fires.
	now := time.Date(2025, time.February, 28, 6, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	series := s.activeSeries(31)

	s.seriesRepo.EXPECT().GetActiveDueBetween(28, 31).
		Return([]models.RecurringSeries{series}, nil)
	s.txRepo.EXPECT().ExistsOccurrenceOn(series.GroupID, today).Return(false, nil)
	s.txRepo.EXPECT().CreateWithGoalContribution(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("recurring_occurrences_generated", gomock.Any())

	created, err := s.service.RunDailyGeneration(s.ctx, now)

	s.NoError(err)
	s.Equal(1, created)
}

func (s *RecurringServiceSuite) TestRunDailyGeneration_MidMonthWindowStaysNarrow() {
	now := time.Date(2025, time.February, 27, 6, 0, 0, 0, time.UTC)

	s.seriesRepo.EXPECT().GetActiveDueBetween(27, 27).Return(nil, nil)

	created, err := s.service.RunDailyGeneration(s.ctx, now)

	s.NoError(err)
	s.Equal(0, created)
}

func (s *RecurringServiceSuite) TestRunDailyGeneration_InsertRejectionContinues() {
	// A racing runner already inserted; the loser logs and moves on.
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	first := s.activeSeries(10)
	second := s.activeSeries(10)

	s.seriesRepo.EXPECT().GetActiveDueBetween(10, 10).
		Return([]models.RecurringSeries{first, second}, nil)
	s.txRepo.EXPECT().ExistsOccurrenceOn(first.GroupID, gomock.Any()).Return(false, nil)
	s.txRepo.EXPECT().CreateWithGoalContribution(gomock.Any()).
		Return(errors.New("UNIQUE constraint failed"))
	s.txRepo.EXPECT().ExistsOccurrenceOn(second.GroupID, gomock.Any()).Return(false, nil)
	s.txRepo.EXPECT().CreateWithGoalContribution(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("recurring_occurrences_generated", gomock.Any())

	created, err := s.service.RunDailyGeneration(s.ctx, now)

	s.NoError(err)
	s.Equal(1, created)
}

// Test Stop functionality
func (s *RecurringServiceSuite) TestStop_ActiveSeries() {
	series := s.activeSeries(5)

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)
	s.seriesRepo.EXPECT().UpdateStatus(series.GroupID, models.RecurringStatusStopped).Return(nil)
	s.metrics.EXPECT().IncrementCounter("recurring_series_terminated", map[string]string{"mode": "stop"})

	s.NoError(s.service.Stop(s.testUserID, series.GroupID))
}

func (s *RecurringServiceSuite) TestStop_UnknownSeriesIsNoOp() {
	groupID := uuid.New()
	s.seriesRepo.EXPECT().GetByGroupID(groupID).
		Return(nil, repositories.ErrSeriesNotFound)

	s.NoError(s.service.Stop(s.testUserID, groupID))
}

func (s *RecurringServiceSuite) TestStop_StoppedSeriesIsNoOp() {
	series := s.activeSeries(5)
	series.Status = models.RecurringStatusStopped

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)

	s.NoError(s.service.Stop(s.testUserID, series.GroupID))
}

func (s *RecurringServiceSuite) TestStop_OtherUsersSeriesForbidden() {
	series := s.activeSeries(5)
	series.UserID = uuid.New()

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)

	s.ErrorIs(s.service.Stop(s.testUserID, series.GroupID), ErrForbidden)
}

// Test DeleteAll functionality
func (s *RecurringServiceSuite) TestDeleteAll_CascadesAndReverses() {
	series := s.activeSeries(5)

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)
	s.seriesRepo.EXPECT().DeleteCascade(series.GroupID).
		Return(int64(7), decimal.NewFromInt(1_400_000), nil)
	s.metrics.EXPECT().IncrementCounter("recurring_series_terminated", map[string]string{"mode": "delete_all"})

	s.NoError(s.service.DeleteAll(s.testUserID, series.GroupID))
}

func (s *RecurringServiceSuite) TestDeleteAll_UnknownSeriesIsNoOp() {
	groupID := uuid.New()
	s.seriesRepo.EXPECT().GetByGroupID(groupID).
		Return(nil, repositories.ErrSeriesNotFound)

	s.NoError(s.service.DeleteAll(s.testUserID, groupID))
}

func (s *RecurringServiceSuite) TestDeleteAll_GoalReversalFailureSurfaces() {
	series := s.activeSeries(5)

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)
	s.seriesRepo.EXPECT().DeleteCascade(series.GroupID).
		Return(int64(0), decimal.Zero, repositories.ErrGoalNotFound)

	err := s.service.DeleteAll(s.testUserID, series.GroupID)

	s.ErrorIs(err, ErrCascadeInconsistent)
}

func (s *RecurringServiceSuite) TestDeleteAll_OtherUsersSeriesForbidden() {
	series := s.activeSeries(5)
	series.UserID = uuid.New()

	s.seriesRepo.EXPECT().GetByGroupID(series.GroupID).Return(&series, nil)

	s.ErrorIs(s.service.DeleteAll(s.testUserID, series.GroupID), ErrForbidden)
}

// Test ListSeries functionality
func (s *RecurringServiceSuite) TestListSeries_DelegatesToRepository() {
	infos := []models.RecurringSeriesInfo{
		{RecurringSeries: s.activeSeries(5), OccurrenceCount: 3},
	}
	s.seriesRepo.EXPECT().GetByUserID(s.testUserID).Return(infos, nil)

	result, err := s.service.ListSeries(s.testUserID)

	s.NoError(err)
	s.Len(result, 1)
	s.Equal(int64(3), result[0].OccurrenceCount)
}
