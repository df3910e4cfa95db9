package money

import "github.com/amirasaad/moneykit/pkg/currency"

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	CHF Code = "CHF" // Swiss Franc
	CAD Code = "CAD" // Canadian Dollar
	JPY Code = "JPY" // Japanese Yen
)

// IsValid reports whether the code is known to the currency catalog.
func (c Code) IsValid() bool {
	return currency.IsKnown(string(c))
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Symbol returns the currency symbol, or "" when the currency has none.
func (c Code) Symbol() string {
	sym, _ := currency.CurrencyToSymbol(string(c))
	return sym
}

// CountryCode returns the currency used in an ISO 3166-1 alpha-2 country.
func CountryCode(country string) (Code, bool) {
	code, ok := currency.CountryToCurrency(country)
	return Code(code), ok
}
