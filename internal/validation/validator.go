package validation

import (
	"reflect"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("exchange_rate", validateExchangeRate)
	_ = v.RegisterValidation("budget_category", validateBudgetCategory)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates that a currency code is one of the supported ISO codes
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(strings.ToUpper(fl.Field().String()))
}

// validateDecimalAmount validates that an amount string parses as a positive decimal
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateExchangeRate validates that an exchange rate string parses as a positive decimal.
// Empty is allowed here; whether a rate is required depends on the currency and is
// decided by the service layer.
func validateExchangeRate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateBudgetCategory validates that a category is one of the known spending categories
func validateBudgetCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(strings.ToLower(fl.Field().String()))
}

// validateISODate validates a date string in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", raw)
	return err == nil
}
