// Package money provides an immutable monetary value type.
//
// A Money is an exact amount of cents in a currency known to the currency
// catalog. Invariants:
//   - Amount is always stored as a whole number of cents (int64).
//   - Currency must belong to the catalog at construction time.
//   - Ordering is only defined between values sharing a currency.
//   - Every operation returns a new value; nothing mutates a Money.
//
// The canonical text form is "<-?><units>.<2 digit cents> <CODE>", for
// example "-10.40 EUR". It round-trips through Parse and String.
package money

import (
	"fmt"
	"reflect"
)

// Money represents a monetary value in a specific currency.
// The zero value has no currency and is not a valid Money.
type Money struct {
	cents    int64
	currency Code
}

// New creates a Money from a number of cents and a currency code.
// Returns ErrUnknownCurrency if the currency is not in the catalog.
func New(cents int64, code Code) (Money, error) {
	if !code.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, string(code))
	}
	return Money{cents: cents, currency: code}, nil
}

// MustNew is like New but panics if the currency is unknown.
func MustNew(cents int64, code Code) Money {
	m, err := New(cents, code)
	if err != nil {
		panic(fmt.Sprintf("money.MustNew(%d, %q): %v", cents, string(code), err))
	}
	return m
}

// NewFromValue creates a Money from a dynamically typed cents value.
// Only integer kinds are accepted; anything else yields ErrInvalidAmount.
func NewFromValue(cents any, code Code) (Money, error) {
	rv := reflect.ValueOf(cents)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return New(rv.Int(), code)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > maxInt64 {
			return Money{}, fmt.Errorf("%w: %d overflows int64", ErrInvalidAmount, u)
		}
		return New(int64(u), code)
	default:
		return Money{}, fmt.Errorf(
			"%w: was expecting an integer as cents, got %v (%T)",
			ErrInvalidAmount, cents, cents,
		)
	}
}

// Zero creates a zero amount in the given currency.
func Zero(code Code) (Money, error) {
	return New(0, code)
}

const maxInt64 = 1<<63 - 1

// Cents returns the amount in the smallest currency unit.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the currency code.
func (m Money) Currency() Code {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPresent reports whether the amount is non-zero.
func (m Money) IsPresent() bool {
	return !m.IsZero()
}

// Presence returns m and true when m is non-zero.
func (m Money) Presence() (Money, bool) {
	if m.IsZero() {
		return Money{}, false
	}
	return m, true
}

// IsPositive reports whether the amount is greater than or equal to zero.
func (m Money) IsPositive() bool {
	return m.cents >= 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return !m.IsPositive()
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	if m.cents < 0 {
		return m.Negate()
	}
	return m
}

// SameCurrency reports whether m and other share a currency.
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// Equals reports whether both the amount and the currency match.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Compare returns -1, 0 or +1 depending on whether m is less than, equal to
// or greater than other.
// Returns ErrIncompatibleCurrencies when the currencies differ.
func (m Money) Compare(other Money) (int, error) {
	if !m.SameCurrency(other) {
		return 0, fmt.Errorf(
			"%w: cannot compare %s with %s",
			ErrIncompatibleCurrencies, m, other,
		)
	}
	switch {
	case m.cents < other.cents:
		return -1, nil
	case m.cents > other.cents:
		return 1, nil
	default:
		return 0, nil
	}
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c <= 0, err
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c >= 0, err
}
