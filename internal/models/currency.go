package models

// BaseCurrency is the single currency all stored monetary totals are
// normalized to for aggregation.
const BaseCurrency = "VND"

// Supported currency codes
const (
	CurrencyVND = "VND"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyJPY = "JPY"
	CurrencyGBP = "GBP"
	CurrencySGD = "SGD"
	CurrencyAUD = "AUD"
	CurrencyKRW = "KRW"
)

// currencyFractionDigits maps a currency code to the number of fraction
// digits used when rounding display amounts. VND and KRW have no minor unit.
var currencyFractionDigits = map[string]int32{
	CurrencyVND: 0,
	CurrencyUSD: 2,
	CurrencyEUR: 2,
	CurrencyJPY: 0,
	CurrencyGBP: 2,
	CurrencySGD: 2,
	CurrencyAUD: 2,
	CurrencyKRW: 0,
}

// AllCurrencies returns all supported currency codes
func AllCurrencies() []string {
	return []string{
		CurrencyVND,
		CurrencyUSD,
		CurrencyEUR,
		CurrencyJPY,
		CurrencyGBP,
		CurrencySGD,
		CurrencyAUD,
		CurrencyKRW,
	}
}

// IsValidCurrency checks if a currency code is supported
func IsValidCurrency(code string) bool {
	_, ok := currencyFractionDigits[code]
	return ok
}

// CurrencyFractionDigits returns the number of fraction digits for a
// currency code. Unknown codes default to 2, the most common minor unit.
func CurrencyFractionDigits(code string) int32 {
	if digits, ok := currencyFractionDigits[code]; ok {
		return digits
	}
	return 2
}
