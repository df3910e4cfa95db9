package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// The float64 bounds of the int64 range.
const (
	minFloatCents = -9.223372036854775808e18
	maxFloatCents = 9.223372036854775807e18
)

// fromDecimal truncates d toward zero and checks it fits int64.
func fromDecimal(d decimal.Decimal, code Code) (Money, error) {
	bi := d.Truncate(0).BigInt()
	if !bi.IsInt64() {
		return Money{}, fmt.Errorf("%w: %s overflows int64 cents", ErrInvalidAmount, d)
	}
	return Money{cents: bi.Int64(), currency: code}, nil
}

// fromFloat converts an already rounded float to cents.
func fromFloat(f float64, code Code) (Money, error) {
	if math.IsNaN(f) || f < minFloatCents || f >= maxFloatCents {
		return Money{}, fmt.Errorf("%w: %g overflows int64 cents", ErrInvalidAmount, f)
	}
	return Money{cents: int64(f), currency: code}, nil
}

// Mul multiplies m by a scalar.
//
// Integer and decimal operands give the exact product truncated toward
// zero. Float operands give the product rounded to the nearest cent, ties
// away from zero.
func (m Money) Mul(op Operand) (Money, error) {
	if err := op.check(); err != nil {
		return Money{}, err
	}
	if op.kind == FloatKind {
		return fromFloat(math.Round(float64(m.cents)*op.f), m.currency)
	}
	return fromDecimal(decimal.NewFromInt(m.cents).Mul(op.Decimal()), m.currency)
}

// Quo divides m by a scalar.
//
// Integer and decimal divisors give the exact quotient truncated toward
// zero. Float divisors round to the nearest cent, ties away from zero.
// Returns ErrDivisionByZero for a zero divisor.
func (m Money) Quo(op Operand) (Money, error) {
	if err := op.check(); err != nil {
		return Money{}, err
	}
	if op.IsZero() {
		return Money{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, m, op)
	}
	switch op.kind {
	case IntKind:
		if m.cents == math.MinInt64 && op.i == -1 {
			return Money{}, fmt.Errorf("%w: %s / -1 overflows int64 cents", ErrInvalidAmount, m)
		}
		return Money{cents: m.cents / op.i, currency: m.currency}, nil
	case FloatKind:
		return fromFloat(math.Round(float64(m.cents)/op.f), m.currency)
	}
	q, _ := decimal.NewFromInt(m.cents).QuoRem(op.d, 0)
	return fromDecimal(q, m.currency)
}

// Div divides m by a scalar, truncating toward zero.
//
// With roundUp set, a quotient that underestimates the original amount is
// increased by one cent, so the split cent lands on the payer's side.
// Returns ErrDivisionByZero for a zero divisor.
func (m Money) Div(op Operand, roundUp bool) (Money, error) {
	if err := op.check(); err != nil {
		return Money{}, err
	}
	if op.IsZero() {
		return Money{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, m, op)
	}
	cents := decimal.NewFromInt(m.cents)
	divisor := op.Decimal()
	q, _ := cents.QuoRem(divisor, 0)
	if roundUp && q.Mul(divisor).Truncate(0).LessThan(cents) {
		q = q.Add(decimal.NewFromInt(1))
	}
	return fromDecimal(q, m.currency)
}

// Percent applies a percentage to m: 3.00 EUR at 90 gives 2.70 EUR.
//
// Only integer and decimal percentages are accepted. The result is rounded
// to the nearest cent, ties away from zero.
func (m Money) Percent(op Operand) (Money, error) {
	if err := op.check(); err != nil {
		return Money{}, err
	}
	if op.kind == FloatKind {
		return Money{}, fmt.Errorf("%w: percentage must be an integer or a decimal, got float %s", ErrInvalidOperand, op)
	}
	p := decimal.NewFromInt(m.cents).Mul(op.Decimal()).Shift(-2)
	return fromDecimal(p.Round(0), m.currency)
}

// MulAny is Mul with a dynamically typed operand, see OperandOf.
func (m Money) MulAny(v any) (Money, error) {
	op, err := OperandOf(v)
	if err != nil {
		return Money{}, fmt.Errorf("cannot multiply %s: %w", m, err)
	}
	return m.Mul(op)
}

// QuoAny is Quo with a dynamically typed operand, see OperandOf.
func (m Money) QuoAny(v any) (Money, error) {
	op, err := OperandOf(v)
	if err != nil {
		return Money{}, fmt.Errorf("cannot divide %s: %w", m, err)
	}
	return m.Quo(op)
}

// PercentAny is Percent with a dynamically typed operand, see OperandOf.
func (m Money) PercentAny(v any) (Money, error) {
	op, err := OperandOf(v)
	if err != nil {
		return Money{}, fmt.Errorf("cannot apply percentage to %s: %w", m, err)
	}
	return m.Percent(op)
}

// Negate returns m with the opposite sign.
func (m Money) Negate() Money {
	return Money{cents: -m.cents, currency: m.currency}
}

// Add returns the sum of m and other.
//
// A zero amount adopts the currency of the other operand, so zero in any
// currency is an additive identity. Adding two non-zero amounts in
// different currencies returns ErrIncompatibleCurrencies.
func (m Money) Add(other Money) (Money, error) {
	var code Code
	switch {
	case m.currency == other.currency, other.cents == 0:
		code = m.currency
	case m.cents == 0:
		code = other.currency
	default:
		return Money{}, fmt.Errorf(
			"%w: cannot add %s and %s",
			ErrIncompatibleCurrencies, m, other,
		)
	}
	sum := m.cents + other.cents
	if (sum > m.cents) != (other.cents > 0) {
		return Money{}, fmt.Errorf("%w: %s + %s overflows int64 cents", ErrInvalidAmount, m, other)
	}
	return Money{cents: sum, currency: code}, nil
}

// Sub returns m minus other, following the currency rules of Add.
func (m Money) Sub(other Money) (Money, error) {
	return m.Add(other.Negate())
}

// AddAny is Add with a dynamically typed operand.
// Anything but a Money returns ErrInvalidOperand.
func (m Money) AddAny(v any) (Money, error) {
	other, err := asMoney(v)
	if err != nil {
		return Money{}, err
	}
	return m.Add(other)
}

// SubAny is Sub with a dynamically typed operand.
// Anything but a Money returns ErrInvalidOperand.
func (m Money) SubAny(v any) (Money, error) {
	other, err := asMoney(v)
	if err != nil {
		return Money{}, err
	}
	return m.Sub(other)
}

func asMoney(v any) (Money, error) {
	switch o := v.(type) {
	case Money:
		return o, nil
	case *Money:
		if o != nil {
			return *o, nil
		}
	}
	return Money{}, fmt.Errorf("%w: was expecting a Money, got %v (%T)", ErrInvalidOperand, v, v)
}

// Sum adds all values together following the currency rules of Add.
func Sum(values ...Money) (Money, error) {
	if len(values) == 0 {
		return Money{}, fmt.Errorf("%w: nothing to sum", ErrInvalidAmount)
	}
	total := values[0]
	for _, v := range values[1:] {
		var err error
		if total, err = total.Add(v); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Allocate splits m into parts shares summing exactly to m.
// Remainder cents go one each to the first shares.
func (m Money) Allocate(parts int) ([]Money, error) {
	switch {
	case parts == 0:
		return nil, fmt.Errorf("%w: cannot allocate %s into 0 parts", ErrDivisionByZero, m)
	case parts < 0:
		return nil, fmt.Errorf("%w: cannot allocate %s into %d parts", ErrInvalidOperand, m, parts)
	}
	n := int64(parts)
	base, rem := m.cents/n, m.cents%n
	step := int64(1)
	if rem < 0 {
		step, rem = -1, -rem
	}
	shares := make([]Money, parts)
	for i := range shares {
		cents := base
		if int64(i) < rem {
			cents += step
		}
		shares[i] = Money{cents: cents, currency: m.currency}
	}
	return shares, nil
}
