package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ThresholdStateRepositorySuite defines the test suite for ThresholdStateRepository
type ThresholdStateRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       ThresholdStateRepositoryInterface
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *ThresholdStateRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewThresholdStateRepository(s.db.DB)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *ThresholdStateRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestThresholdStateRepositorySuite runs the test suite
func TestThresholdStateRepositorySuite(t *testing.T) {
	suite.Run(t, new(ThresholdStateRepositorySuite))
}

func (s *ThresholdStateRepositorySuite) TestGetForPeriod_EmptyWhenNeverEvaluated() {
	states, err := s.repo.GetForPeriod(s.testUserID, 3, 2025)

	s.NoError(err)
	s.Empty(states)
}

func (s *ThresholdStateRepositorySuite) TestUpsertPercent_CreatesThenUpdates() {
	s.NoError(s.repo.UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 45))
	s.NoError(s.repo.UpsertPercent(s.testUserID, 3, 2025, models.CategoryFood, 70))

	states, err := s.repo.GetForPeriod(s.testUserID, 3, 2025)
	s.NoError(err)
	s.Len(states, 2)
	s.InDelta(45, states[models.ThresholdScopeTotal], 0.0001)
	s.InDelta(70, states[models.CategoryFood], 0.0001)

	// A re-evaluation overwrites rather than duplicating the row
	s.NoError(s.repo.UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 85))

	states, err = s.repo.GetForPeriod(s.testUserID, 3, 2025)
	s.NoError(err)
	s.Len(states, 2)
	s.InDelta(85, states[models.ThresholdScopeTotal], 0.0001)

	var count int64
	s.NoError(s.db.Model(&models.ThresholdState{}).Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *ThresholdStateRepositorySuite) TestUpsertPercent_PeriodsIsolated() {
	s.NoError(s.repo.UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 90))
	s.NoError(s.repo.UpsertPercent(s.testUserID, 4, 2025, models.ThresholdScopeTotal, 10))

	march, err := s.repo.GetForPeriod(s.testUserID, 3, 2025)
	s.NoError(err)
	s.InDelta(90, march[models.ThresholdScopeTotal], 0.0001)

	april, err := s.repo.GetForPeriod(s.testUserID, 4, 2025)
	s.NoError(err)
	s.InDelta(10, april[models.ThresholdScopeTotal], 0.0001)
}

func (s *ThresholdStateRepositorySuite) TestGetForPeriod_ScopedToUser() {
	s.NoError(s.repo.UpsertPercent(s.testUserID, 3, 2025, models.ThresholdScopeTotal, 90))

	states, err := s.repo.GetForPeriod(uuid.New(), 3, 2025)

	s.NoError(err)
	s.Empty(states)
}
