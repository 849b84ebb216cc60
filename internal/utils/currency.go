package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var SupportedCurrencies = map[string]Currency{
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	"AED": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
}

// RoundToUnit rounds a monetary value to the smallest currency subunit
// (2 decimal places), half away from zero. Scaling by 100 before rounding
// avoids binary floating point artifacts like 305.09999999999997.
func RoundToUnit(value float64) float64 {
	return math.Round(value*100) / 100
}

// RoundToWholeUnit rounds to the nearest whole currency unit, half up.
func RoundToWholeUnit(value float64) float64 {
	return math.Floor(value + 0.5)
}

// ToMinorUnits converts a monetary value to an integer count of currency
// subunits (cents). Payment gateway amount fields must only ever be built
// from this.
func ToMinorUnits(value float64) int64 {
	return int64(math.Round(RoundToUnit(value) * 100))
}

// ApplyPercentageDiscount subtracts fraction of amount. The discount is
// rounded before subtraction so the discount shown to the client and the
// post-discount amount are both exact to the subunit.
func ApplyPercentageDiscount(amount, fraction float64) float64 {
	discount := RoundToUnit(amount * fraction)
	return RoundToUnit(amount - discount)
}

func FormatCurrency(amount float64, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies["EUR"]
	}

	return fmt.Sprintf("%s%.2f", currency.Symbol, RoundToUnit(amount))
}

func ParseCurrencyAmount(amountStr string) (float64, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, "£", "")
	cleaned = strings.ReplaceAll(cleaned, "CHF", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	return strconv.ParseFloat(cleaned, 64)
}

func IsSupportedCurrency(currencyCode string) bool {
	_, exists := SupportedCurrencies[currencyCode]
	return exists
}
