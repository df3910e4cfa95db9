package money

import (
	"fmt"
	"log/slog"
)

// Policy decides what happens when a Money is built without a currency.
//
// The package level New always requires a currency. A Policy with
// AllowImplicit falls back to DefaultCurrency and logs a deprecation
// warning; a strict Policy returns ErrCurrencyRequired.
type Policy struct {
	DefaultCurrency Code
	AllowImplicit   bool
	Logger          *slog.Logger
}

// StrictPolicy returns a policy rejecting missing currencies.
func StrictPolicy() Policy {
	return Policy{}
}

// New creates a Money, applying the policy when code is empty.
func (p Policy) New(cents int64, code Code) (Money, error) {
	if code != "" {
		return New(cents, code)
	}
	if !p.AllowImplicit || p.DefaultCurrency == "" {
		return Money{}, ErrCurrencyRequired
	}
	p.logger().Warn(
		"building money without an explicit currency is deprecated",
		"cents", cents,
		"default_currency", p.DefaultCurrency,
	)
	m, err := New(cents, p.DefaultCurrency)
	if err != nil {
		return Money{}, fmt.Errorf("invalid default currency: %w", err)
	}
	return m, nil
}

func (p Policy) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
