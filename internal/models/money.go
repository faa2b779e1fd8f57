package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCurrency   = errors.New("unsupported currency code")
	ErrNegativeAmount    = errors.New("amount must be positive")
	ErrNonPositiveRate   = errors.New("exchange rate must be positive")
	ErrBaseValueMismatch = errors.New("base value does not match amount and rate")
)

// MoneyAmount is an immutable monetary value: the amount as entered by the
// user, the exchange rate captured when the record was created, and the
// base-currency equivalent derived from them. BaseValue is never recomputed
// from a live rate, so historical records keep their value when rates move.
type MoneyAmount struct {
	Value        decimal.Decimal `json:"value"`
	Currency     string          `json:"currency"`
	BaseValue    decimal.Decimal `json:"base_value"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// NewMoneyAmount snapshots value at the given rate into the base currency.
// The rate is units of base currency per unit of the original currency;
// amounts already in the base currency carry a rate of 1.
func NewMoneyAmount(value decimal.Decimal, currency string, rate decimal.Decimal) (MoneyAmount, error) {
	if !IsValidCurrency(currency) {
		return MoneyAmount{}, ErrInvalidCurrency
	}
	if value.IsNegative() {
		return MoneyAmount{}, ErrNegativeAmount
	}
	if currency == BaseCurrency {
		rate = decimal.NewFromInt(1)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return MoneyAmount{}, ErrNonPositiveRate
	}

	return MoneyAmount{
		Value:        value,
		Currency:     currency,
		BaseValue:    value.Mul(rate).Round(CurrencyFractionDigits(BaseCurrency)),
		ExchangeRate: rate,
	}, nil
}

// Validate checks the internal consistency of a money amount loaded from
// storage. The base value must reproduce from the stored value and rate
// within the base currency's minor unit.
func (m MoneyAmount) Validate() error {
	if !IsValidCurrency(m.Currency) {
		return ErrInvalidCurrency
	}
	if m.Value.IsNegative() {
		return ErrNegativeAmount
	}
	if m.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveRate
	}

	expected := m.Value.Mul(m.ExchangeRate).Round(CurrencyFractionDigits(BaseCurrency))
	tolerance := decimal.New(1, -CurrencyFractionDigits(BaseCurrency))
	if expected.Sub(m.BaseValue).Abs().GreaterThan(tolerance) {
		return ErrBaseValueMismatch
	}
	return nil
}

// IsBase returns true if the amount was entered in the base currency
func (m MoneyAmount) IsBase() bool {
	return m.Currency == BaseCurrency
}
