package compensation

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// NormalizeCurrency trims, truncates to three characters and uppercases the
// configured code, then validates it against the ISO-4217 table. Anything
// unrecognized falls back to DefaultCurrency; a bad code is a preference to
// recover from, not an error to surface.
func NormalizeCurrency(code string) string {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	trimmed = strings.ToUpper(trimmed)
	if trimmed == "" {
		return DefaultCurrency
	}
	if _, err := currency.ParseISO(trimmed); err != nil {
		return DefaultCurrency
	}
	return trimmed
}

// FormatAmount renders a monetary amount as "<CODE> <amount>" with two
// decimal places and thousands grouping.
func FormatAmount(value float64, code string) string {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return printer.Sprintf("%s %.2f", NormalizeCurrency(code), rounded)
}
