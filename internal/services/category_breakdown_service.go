package services

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// unallocatedOverspendPercent is reported when spend exists against a zero
// allocation. The ratio is undefined there; any finite value strictly above
// the over line keeps the output NaN-free while still flagging the category.
const unallocatedOverspendPercent = 101.0

// categoryBreakdownCalculator implements CategoryBreakdownInterface.
// Pure: same budget and spends always produce the same stats.
type categoryBreakdownCalculator struct {
	currency CurrencyNormalizerInterface
}

// NewCategoryBreakdownCalculator creates a new category breakdown calculator
func NewCategoryBreakdownCalculator(currency CurrencyNormalizerInterface) CategoryBreakdownInterface {
	return &categoryBreakdownCalculator{
		currency: currency,
	}
}

// Breakdown produces one stat per allocated category. Categories without
// an allocation are skipped: category stats only cover categories the
// budget allocates, even when partial allocation leaves spend uncovered.
func (c *categoryBreakdownCalculator) Breakdown(budget *models.Budget, spends []models.CategorySpend) []models.CategoryStat {
	spentByCategory := make(map[string]decimal.Decimal, len(spends))
	for i := range spends {
		spentByCategory[spends[i].Category] = spends[i].TotalBaseAmount
	}

	displayIsBase := budget.OriginalCurrency == models.BaseCurrency
	hundred := decimal.NewFromInt(100)

	stats := make([]models.CategoryStat, 0, len(budget.Categories))
	for i := range budget.Categories {
		alloc := &budget.Categories[i]
		spent := spentByCategory[alloc.Category]

		percentUsed := percentOf(spent, alloc.BudgetedAmount)

		stat := models.CategoryStat{
			Category:       alloc.Category,
			BudgetedAmount: alloc.BudgetedAmount,
			SpentAmount:    spent,
			PercentUsed:    percentUsed,
			IsOver:         percentUsed > 100,
		}

		if displayIsBase {
			stat.DisplayBudget = alloc.BudgetedAmount
			stat.DisplaySpent = spent
		} else {
			// Percent was computed from base figures first; scaling the
			// original allocation by it avoids converting the base spend a
			// second time and double rounding.
			stat.DisplayBudget = alloc.OriginalBudgetedAmount
			if alloc.BudgetedAmount.IsZero() {
				stat.DisplaySpent = c.currency.ToDisplay(
					spent, budget.TotalBudget, budget.OriginalAmount, budget.OriginalCurrency)
			} else {
				ratio := decimal.NewFromFloat(percentUsed).Div(hundred)
				stat.DisplaySpent = c.currency.RoundForCurrency(
					alloc.OriginalBudgetedAmount.Mul(ratio), budget.OriginalCurrency)
			}
		}
		stat.DisplayRemaining = stat.DisplayBudget.Sub(stat.DisplaySpent)

		stats = append(stats, stat)
	}

	return stats
}

// percentOf resolves spent/budgeted*100 with defined values for the zero
// denominator: a category with no allocation and no spend sits at 0%, and
// any spend against a zero allocation is over. Never NaN or infinity.
func percentOf(spent, budgeted decimal.Decimal) float64 {
	if budgeted.IsZero() {
		if spent.IsZero() {
			return 0
		}
		return unallocatedOverspendPercent
	}
	percent, _ := spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}
