package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies the numeric kind of an Operand.
type Kind int

// Operand kinds. Each kind carries its own rounding rule, see Money.Mul.
const (
	IntKind Kind = iota + 1
	DecimalKind
	FloatKind
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case DecimalKind:
		return "decimal"
	case FloatKind:
		return "float"
	default:
		return "invalid"
	}
}

// Operand is a scalar used to scale a Money.
// The zero Operand is invalid and rejected by every operation.
type Operand struct {
	kind Kind
	i    int64
	d    decimal.Decimal
	f    float64
}

// Int returns an integer operand.
func Int(n int64) Operand {
	return Operand{kind: IntKind, i: n}
}

// Dec returns an exact decimal operand.
func Dec(d decimal.Decimal) Operand {
	return Operand{kind: DecimalKind, d: d}
}

// Float returns a floating-point operand.
func Float(f float64) Operand {
	return Operand{kind: FloatKind, f: f}
}

// OperandOf converts a dynamically typed value to an Operand.
// Integer kinds, float32/float64, decimal.Decimal and *big.Int are accepted.
// Anything else, strings included, returns ErrInvalidOperand.
func OperandOf(v any) (Operand, error) {
	switch n := v.(type) {
	case Operand:
		if n.kind == 0 {
			break
		}
		return n, nil
	case int:
		return Int(int64(n)), nil
	case int8:
		return Int(int64(n)), nil
	case int16:
		return Int(int64(n)), nil
	case int32:
		return Int(int64(n)), nil
	case int64:
		return Int(n), nil
	case uint:
		return uintOperand(uint64(n))
	case uint8:
		return Int(int64(n)), nil
	case uint16:
		return Int(int64(n)), nil
	case uint32:
		return Int(int64(n)), nil
	case uint64:
		return uintOperand(n)
	case float32:
		return Float(float64(n)), nil
	case float64:
		return Float(n), nil
	case decimal.Decimal:
		return Dec(n), nil
	case *decimal.Decimal:
		if n == nil {
			break
		}
		return Dec(*n), nil
	case *big.Int:
		if n == nil {
			break
		}
		return Dec(decimal.NewFromBigInt(n, 0)), nil
	}
	return Operand{}, fmt.Errorf("%w: cannot use %v (%T) as a numeric operand", ErrInvalidOperand, v, v)
}

func uintOperand(u uint64) (Operand, error) {
	if u > maxInt64 {
		return Dec(decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)), nil
	}
	return Int(int64(u)), nil
}

// Kind returns the operand kind.
func (o Operand) Kind() Kind {
	return o.kind
}

// IsZero reports whether the operand value is zero.
func (o Operand) IsZero() bool {
	switch o.kind {
	case IntKind:
		return o.i == 0
	case DecimalKind:
		return o.d.IsZero()
	case FloatKind:
		return o.f == 0
	}
	return false
}

// Decimal returns the operand as a decimal.
// Floats are converted with their shortest representation; NaN and
// infinities yield zero.
func (o Operand) Decimal() decimal.Decimal {
	switch o.kind {
	case IntKind:
		return decimal.NewFromInt(o.i)
	case DecimalKind:
		return o.d
	case FloatKind:
		if math.IsNaN(o.f) || math.IsInf(o.f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(o.f)
	}
	return decimal.Zero
}

// String returns the operand value as text.
func (o Operand) String() string {
	switch o.kind {
	case IntKind:
		return strconv.FormatInt(o.i, 10)
	case DecimalKind:
		return o.d.String()
	case FloatKind:
		return strconv.FormatFloat(o.f, 'g', -1, 64)
	}
	return "<invalid>"
}

// check rejects the zero Operand and non-finite floats.
func (o Operand) check() error {
	switch o.kind {
	case IntKind, DecimalKind:
		return nil
	case FloatKind:
		if math.IsNaN(o.f) || math.IsInf(o.f, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidOperand, o)
		}
		return nil
	}
	return fmt.Errorf("%w: %s operand", ErrInvalidOperand, o.kind)
}
