package money

import (
	"errors"
	"fmt"
)

// Common money package errors
var (
	// ErrParse is returned when a string is not a valid monetary value.
	ErrParse = errors.New("could not parse monetary value")

	// ErrUnknownCurrency is returned when a currency code is not in the catalog.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyRequired is returned by a strict Policy when no currency is given.
	ErrCurrencyRequired = fmt.Errorf("%w: currency is required", ErrUnknownCurrency)

	// ErrInvalidAmount is returned when an amount is not a whole number of cents
	// or falls outside the int64 range.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidOperand is returned when an arithmetic operand has an unsupported kind.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrIncompatibleCurrencies is returned when combining or comparing
	// non-zero amounts in different currencies.
	ErrIncompatibleCurrencies = errors.New("incompatible currencies")

	// ErrDivisionByZero is returned when dividing by a zero operand.
	ErrDivisionByZero = errors.New("division by zero")
)
