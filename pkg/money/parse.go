package money

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The expression matching a canonical monetary value, applied to the
// trimmed input: optional "-", units, exactly two cent digits and a
// three character currency token.
var canonical = regexp.MustCompile(`^(-?)\s*([0-9]+)\.([0-9]{2})\s+(\S{3})$`)

// The trailing currency token accepted by NullMoney.
var trailingCode = regexp.MustCompile(`(\w{3})$`)

// Parse converts a canonical string such as "-10.40 EUR" to a Money.
//
// Leading and trailing whitespace is ignored. A "+" sign, thousands
// separators, a single cent digit or more than two cent digits are all
// rejected. Every failure wraps ErrParse; an unknown currency token wraps
// ErrUnknownCurrency as well.
func Parse(s string) (Money, error) {
	m := canonical.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Money{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	negative := m[1] == "-"
	limit := uint64(maxInt64)
	if negative {
		limit++
	}
	units, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil || units > limit/100 {
		return Money{}, fmt.Errorf("%w: %q: amount out of range", ErrParse, s)
	}
	fraction, _ := strconv.ParseUint(m[3], 10, 64)
	magnitude := units*100 + fraction
	if magnitude > limit {
		return Money{}, fmt.Errorf("%w: %q: amount out of range", ErrParse, s)
	}
	cents := int64(magnitude)
	if negative {
		cents = int64(-magnitude)
	}
	money, err := New(cents, Code(m[4]))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
	}
	return money, nil
}

// FromString is an alias of Parse.
func FromString(s string) (Money, error) {
	return Parse(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.MustParse(%q): %v", s, err))
	}
	return m
}

// NullMoney returns a zero amount in the currency of other.
//
// other is either a Money or a string ending with a currency token, such as
// "EUR" or "15.40 EUR". The string is not validated beyond its trailing
// token. Any other input returns ErrParse.
func NullMoney(other any) (Money, error) {
	switch v := other.(type) {
	case Money:
		return Zero(v.currency)
	case *Money:
		if v == nil {
			break
		}
		return Zero(v.currency)
	case string:
		m := trailingCode.FindStringSubmatch(v)
		if m == nil {
			return Money{}, fmt.Errorf("%w: no currency in %q", ErrParse, v)
		}
		zero, err := Zero(Code(m[1]))
		if err != nil {
			return Money{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return zero, nil
	}
	return Money{}, fmt.Errorf(
		"%w: expected a string or a Money, got %v (%T)",
		ErrParse, other, other,
	)
}
