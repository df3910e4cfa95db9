package currency

// CurrencyResponse represents the response structure for currency data
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	// Pattern is the display template, empty when the currency has none.
	Pattern string `json:"pattern,omitempty"`
}

// CountryCurrencyResponse represents the currency used in a country.
type CountryCurrencyResponse struct {
	Country  string           `json:"country"`
	Currency CurrencyResponse `json:"currency"`
}
