// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "ARS": true, "AUD": true, "BOB": true, "BRL": true,
	"CAD": true, "CHF": true, "CLP": true, "CNY": true, "COP": true,
	"CRC": true, "CZK": true, "DKK": true, "DOP": true, "EUR": true,
	"GBP": true, "GTQ": true, "HKD": true, "HNL": true, "HUF": true,
	"IDR": true, "ILS": true, "INR": true, "JPY": true, "KRW": true,
	"MXN": true, "MYR": true, "NIO": true, "NOK": true, "NZD": true,
	"PAB": true, "PEN": true, "PHP": true, "PLN": true, "PYG": true,
	"RON": true, "SEK": true, "SGD": true, "THB": true, "TRY": true,
	"TWD": true, "USD": true, "UYU": true, "VES": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("fund_type", validateFundType)
		_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "EXPENSE", "INCOME", "TRANSFER", "CARD_CHARGE", "CARD_PAYMENT":
		return true
	}
	return false
}

func validateFundType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CASH", "BANK", "WALLET":
		return true
	}
	return false
}

// validateDayOfMonth accepts billing cycle anchors between 1 and 31.
func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}
