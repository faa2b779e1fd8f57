package services

import (
	"testing"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CategoryBreakdownSuite defines the test suite for the breakdown calculator
type CategoryBreakdownSuite struct {
	suite.Suite
	calculator CategoryBreakdownInterface
}

func (s *CategoryBreakdownSuite) SetupTest() {
	s.calculator = NewCategoryBreakdownCalculator(NewCurrencyNormalizer())
}

func TestCategoryBreakdownSuite(t *testing.T) {
	suite.Run(t, new(CategoryBreakdownSuite))
}

func (s *CategoryBreakdownSuite) baseBudget(total int64, allocations map[string]int64) *models.Budget {
	budget := &models.Budget{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Month:            3,
		Year:             2025,
		OriginalCurrency: models.BaseCurrency,
		OriginalAmount:   decimal.NewFromInt(total),
		TotalBudget:      decimal.NewFromInt(total),
		ExchangeRate:     decimal.NewFromInt(1),
	}
	for category, amount := range allocations {
		budget.Categories = append(budget.Categories, models.CategoryAllocation{
			Category:               category,
			BudgetedAmount:         decimal.NewFromInt(amount),
			OriginalBudgetedAmount: decimal.NewFromInt(amount),
		})
	}
	return budget
}

func (s *CategoryBreakdownSuite) statFor(stats []models.CategoryStat, category string) *models.CategoryStat {
	for i := range stats {
		if stats[i].Category == category {
			return &stats[i]
		}
	}
	s.FailNowf("missing stat", "no stat for category %s", category)
	return nil
}

func (s *CategoryBreakdownSuite) TestBreakdown_OverBudgetCategory() {
	// 10M budget, 2M allocated to food, 2.5M spent on food: the category
	// sits at 125% and over, while the month total is only 25% used.
	budget := s.baseBudget(10_000_000, map[string]int64{models.CategoryFood: 2_000_000})
	spends := []models.CategorySpend{
		{Category: models.CategoryFood, TotalBaseAmount: decimal.NewFromInt(2_500_000), TransactionCount: 3},
	}

	stats := s.calculator.Breakdown(budget, spends)

	s.Len(stats, 1)
	food := s.statFor(stats, models.CategoryFood)
	s.InDelta(125.0, food.PercentUsed, 0.0001)
	s.True(food.IsOver)
	s.True(food.SpentAmount.Equal(decimal.NewFromInt(2_500_000)))
	s.True(food.DisplayRemaining.Equal(decimal.NewFromInt(-500_000)))
}

func (s *CategoryBreakdownSuite) TestBreakdown_ZeroAllocationZeroSpend() {
	budget := s.baseBudget(5_000_000, map[string]int64{models.CategoryTravel: 0})

	stats := s.calculator.Breakdown(budget, nil)

	travel := s.statFor(stats, models.CategoryTravel)
	s.Equal(0.0, travel.PercentUsed)
	s.False(travel.IsOver)
}

func (s *CategoryBreakdownSuite) TestBreakdown_SpendAgainstZeroAllocation() {
	// The ratio is undefined; the stat must come back finite and over.
	budget := s.baseBudget(5_000_000, map[string]int64{models.CategoryTravel: 0})
	spends := []models.CategorySpend{
		{Category: models.CategoryTravel, TotalBaseAmount: decimal.NewFromInt(300_000), TransactionCount: 1},
	}

	stats := s.calculator.Breakdown(budget, spends)

	travel := s.statFor(stats, models.CategoryTravel)
	s.InDelta(unallocatedOverspendPercent, travel.PercentUsed, 0.0001)
	s.True(travel.IsOver)
}

func (s *CategoryBreakdownSuite) TestBreakdown_UnallocatedSpendSkipped() {
	// Spend in a category the budget does not allocate produces no stat.
	budget := s.baseBudget(5_000_000, map[string]int64{models.CategoryFood: 1_000_000})
	spends := []models.CategorySpend{
		{Category: models.CategoryFood, TotalBaseAmount: decimal.NewFromInt(500_000)},
		{Category: models.CategoryShopping, TotalBaseAmount: decimal.NewFromInt(800_000)},
	}

	stats := s.calculator.Breakdown(budget, spends)

	s.Len(stats, 1)
	s.Equal(models.CategoryFood, stats[0].Category)
}

func (s *CategoryBreakdownSuite) TestBreakdown_ForeignCurrencyDisplayScalesOriginal() {
	// Budget created from 400 USD at 25,000: food allocated 100 USD
	// (2.5M base). Spending 1.25M base is 50% used, displayed as 50 USD.
	budget := &models.Budget{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Month:            4,
		Year:             2025,
		OriginalCurrency: models.CurrencyUSD,
		OriginalAmount:   decimal.NewFromInt(400),
		TotalBudget:      decimal.NewFromInt(10_000_000),
		ExchangeRate:     decimal.NewFromInt(25000),
		Categories: []models.CategoryAllocation{
			{
				Category:               models.CategoryFood,
				BudgetedAmount:         decimal.NewFromInt(2_500_000),
				OriginalBudgetedAmount: decimal.NewFromInt(100),
			},
		},
	}
	spends := []models.CategorySpend{
		{Category: models.CategoryFood, TotalBaseAmount: decimal.NewFromInt(1_250_000)},
	}

	stats := s.calculator.Breakdown(budget, spends)

	food := s.statFor(stats, models.CategoryFood)
	s.InDelta(50.0, food.PercentUsed, 0.0001)
	s.True(food.DisplayBudget.Equal(decimal.NewFromInt(100)))
	s.True(food.DisplaySpent.Equal(decimal.NewFromInt(50)), "got %s", food.DisplaySpent)
	s.True(food.DisplayRemaining.Equal(decimal.NewFromInt(50)))
}

func (s *CategoryBreakdownSuite) TestBreakdown_DeterministicForSameInput() {
	budget := s.baseBudget(8_000_000, map[string]int64{
		models.CategoryFood:      2_000_000,
		models.CategoryTransport: 1_000_000,
	})
	spends := []models.CategorySpend{
		{Category: models.CategoryFood, TotalBaseAmount: decimal.NewFromInt(900_000)},
		{Category: models.CategoryTransport, TotalBaseAmount: decimal.NewFromInt(1_100_000)},
	}

	first := s.calculator.Breakdown(budget, spends)
	second := s.calculator.Breakdown(budget, spends)

	s.Equal(first, second)
}
