package money

import (
	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/amirasaad/moneykit/pkg/validator"
)

// ParseRequest represents the request body for parsing a monetary value.
type ParseRequest struct {
	Value string `json:"value" validate:"required"`
}

// NewRequest represents the request body for building a value from cents.
// Currency may be omitted when the server allows an implicit currency.
type NewRequest struct {
	Cents    *int64 `json:"cents" validate:"required"`
	Currency string `json:"currency,omitempty"`
}

// FormatRequest represents the request body for formatting a monetary value.
type FormatRequest struct {
	Value        string `json:"value" validate:"required,money"`
	Locale       string `json:"locale,omitempty"`
	ExplicitSign bool   `json:"explicit_sign"`
	Compact      bool   `json:"compact"`
	SkipDecimals bool   `json:"skip_decimals"`
	HTML         bool   `json:"html"`
}

// AddRequest represents the request body for adding or subtracting two values.
type AddRequest struct {
	Left  string `json:"left" validate:"required,money"`
	Right string `json:"right" validate:"required,money"`
	Op    string `json:"op" validate:"omitempty,oneof=add sub"`
}

// SplitRequest represents the request body for splitting a value into parts.
type SplitRequest struct {
	Value   string `json:"value" validate:"required,money"`
	Parts   int    `json:"parts" validate:"required,min=1,max=1000"`
	RoundUp bool   `json:"round_up"`
}

// ValidateRequest represents the request body for validating raw values.
// A null field value is absent and never reported.
type ValidateRequest struct {
	Fields   map[string]*string `json:"fields" validate:"required"`
	Positive bool               `json:"positive"`
	MinCents *int64             `json:"min_cents,omitempty"`
	Currency string             `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// Options returns the validation rules selected by the request.
func (r *ValidateRequest) Options() []validator.Option {
	var opts []validator.Option
	if r.Positive {
		opts = append(opts, validator.Positive())
	}
	if r.MinCents != nil {
		opts = append(opts, validator.MinCents(*r.MinCents))
	}
	if r.Currency != "" {
		opts = append(opts, validator.Currency(money.Code(r.Currency)))
	}
	return opts
}

// MoneyResponse represents a monetary value in responses.
type MoneyResponse struct {
	Cents     int64  `json:"cents"`
	Currency  string `json:"currency"`
	Canonical string `json:"canonical"`
	Display   string `json:"display"`
}

// ToResponse converts a Money to a response DTO
func ToResponse(m money.Money, opts ...money.DisplayOption) MoneyResponse {
	return MoneyResponse{
		Cents:     m.Cents(),
		Currency:  m.Currency().String(),
		Canonical: m.String(),
		Display:   m.Display(opts...),
	}
}

// FormatResponse represents the response of a format request.
type FormatResponse struct {
	Display string `json:"display"`
}

// SplitResponse represents the response of a split request.
type SplitResponse struct {
	// Share is the value divided by parts, rounded up when requested.
	Share MoneyResponse `json:"share"`
	// Allocation always adds up to the original value.
	Allocation []MoneyResponse `json:"allocation"`
}

// ValidateResponse represents the response of a validate request.
type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Errors validator.Messages `json:"errors"`
}
