package services

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// currencyNormalizer implements CurrencyNormalizerInterface. It holds no
// state: every conversion uses a rate the caller captured when the record
// was created, never a live lookup, so historical amounts are stable.
type currencyNormalizer struct{}

// NewCurrencyNormalizer creates a new currency normalizer
func NewCurrencyNormalizer() CurrencyNormalizerInterface {
	return &currencyNormalizer{}
}

// ToBase converts an amount into the base currency at the captured rate.
// Amounts already in the base currency pass through unchanged.
func (n *currencyNormalizer) ToBase(amount decimal.Decimal, currency string, rate decimal.Decimal) (decimal.Decimal, error) {
	if !models.IsValidCurrency(currency) {
		return decimal.Zero, models.ErrInvalidCurrency
	}
	if currency == models.BaseCurrency {
		return amount.Round(models.CurrencyFractionDigits(models.BaseCurrency)), nil
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, models.ErrNonPositiveRate
	}
	return amount.Mul(rate).Round(models.CurrencyFractionDigits(models.BaseCurrency)), nil
}

// ToDisplay projects a base-currency value back into the record's original
// currency. The effective rate is derived from the record's own stored
// totals rather than looked up live so that re-displaying the full original
// amount reproduces the original figure exactly.
func (n *currencyNormalizer) ToDisplay(baseValue, originalTotalBase, originalTotalAmount decimal.Decimal, originalCurrency string) decimal.Decimal {
	if originalCurrency == models.BaseCurrency {
		return baseValue.Round(models.CurrencyFractionDigits(models.BaseCurrency))
	}
	rate := n.DeriveRate(originalTotalBase, originalTotalAmount)
	return baseValue.Div(rate).Round(models.CurrencyFractionDigits(originalCurrency))
}

// DeriveRate computes the base-per-original rate from two stored totals.
// A zero original amount would divide by zero; such records fall back to
// rate 1 instead.
func (n *currencyNormalizer) DeriveRate(totalBase, originalAmount decimal.Decimal) decimal.Decimal {
	if originalAmount.IsZero() {
		return decimal.NewFromInt(1)
	}
	return totalBase.Div(originalAmount)
}

// RoundForCurrency rounds an amount to the currency's standard fraction
// digits. VND has none; most others have two.
func (n *currencyNormalizer) RoundForCurrency(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(models.CurrencyFractionDigits(currency))
}
