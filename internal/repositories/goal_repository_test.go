package repositories

import (
	"testing"

	"fintrack/internal/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GoalRepositorySuite defines the test suite for GoalRepository
type GoalRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       GoalRepositoryInterface
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *GoalRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestGoalRepositorySuite runs the test suite
func TestGoalRepositorySuite(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

func (s *GoalRepositorySuite) TestGetByID() {
	goal := database.CreateTestGoal(s.T(), s.db, s.testUserID, "emergency fund",
		decimal.NewFromInt(500_000))

	stored, err := s.repo.GetByID(goal.ID)

	s.NoError(err)
	s.Equal("emergency fund", stored.Name)
	s.True(stored.CurrentBaseAmount.Equal(decimal.NewFromInt(500_000)))
}

func (s *GoalRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestAdjustBalance() {
	goal := database.CreateTestGoal(s.T(), s.db, s.testUserID, "emergency fund",
		decimal.NewFromInt(500_000))

	s.NoError(s.repo.AdjustBalance(goal.ID, decimal.NewFromInt(200_000)))
	s.NoError(s.repo.AdjustBalance(goal.ID, decimal.NewFromInt(-100_000)))

	stored, err := s.repo.GetByID(goal.ID)
	s.NoError(err)
	s.True(stored.CurrentBaseAmount.Equal(decimal.NewFromInt(600_000)))
}

func (s *GoalRepositorySuite) TestAdjustBalance_NotFound() {
	err := s.repo.AdjustBalance(uuid.New(), decimal.NewFromInt(100_000))

	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestGetByUserID_ScopedToUser() {
	database.CreateTestGoal(s.T(), s.db, s.testUserID, "mine", decimal.Zero)
	database.CreateTestGoal(s.T(), s.db, uuid.New(), "theirs", decimal.Zero)

	goals, err := s.repo.GetByUserID(s.testUserID)

	s.NoError(err)
	s.Len(goals, 1)
	s.Equal("mine", goals[0].Name)
}
