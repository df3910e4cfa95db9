// Package validator checks raw monetary strings held by a record and reports
// human-readable messages per field into a caller supplied sink.
//
// Absent values are never an error. A present value must parse as a
// canonical Money and then pass the configured rules, evaluated in a fixed
// order: Positive, MinCents, Currency. Only the first failing rule is
// reported for a field.
package validator

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/moneykit/pkg/money"
)

type rules struct {
	positive    bool
	hasMinCents bool
	minCents    int64
	currency    money.Code
}

// Option configures a validation rule.
type Option func(*rules)

// Positive rejects negative amounts. Zero is accepted.
func Positive() Option {
	return func(r *rules) { r.positive = true }
}

// MinCents rejects amounts below n cents.
func MinCents(n int64) Option {
	return func(r *rules) {
		r.hasMinCents = true
		r.minCents = n
	}
}

// Currency rejects amounts in a currency other than code.
func Currency(code money.Code) Option {
	return func(r *rules) { r.currency = code }
}

// Message validates a single raw value. It returns the message describing
// the first failed rule, and false when the value is valid.
func Message(raw string, opts ...Option) (string, bool) {
	var r rules
	for _, opt := range opts {
		opt(&r)
	}
	return r.message(raw)
}

func (r rules) message(raw string) (string, bool) {
	m, err := money.Parse(raw)
	if err != nil {
		return fmt.Sprintf("must be a valid monetary value ('%s' given)", raw), true
	}
	if r.positive && m.Cents() < 0 {
		return fmt.Sprintf("must be positive ('%s' given)", raw), true
	}
	if r.hasMinCents && m.Cents() < r.minCents {
		return "must be greater than or equal to " + money.MustNew(r.minCents, m.Currency()).String(), true
	}
	if r.currency != "" && m.Currency() != r.currency {
		return fmt.Sprintf("must be in '%s' ('%s' given)", r.currency, m.Currency()), true
	}
	return "", false
}

// Validator validates record fields and logs rejected values at debug level.
type Validator struct {
	logger *slog.Logger
}

// New creates a Validator. A nil logger means slog.Default().
func New(logger *slog.Logger) *Validator {
	return &Validator{logger: logger}
}

// Validate checks each named field of record and adds one message per
// invalid field to sink. It never stops at the first invalid field.
// It reports whether every field was valid.
func (v *Validator) Validate(record Record, fields []string, sink Sink, opts ...Option) bool {
	var r rules
	for _, opt := range opts {
		opt(&r)
	}

	valid := true
	for _, field := range fields {
		raw, ok := record.Field(field)
		if !ok {
			continue
		}
		msg, failed := r.message(raw)
		if !failed {
			continue
		}
		valid = false
		v.log().Debug("money field rejected", "field", field, "raw", raw, "message", msg)
		sink.Add(field, msg)
	}
	return valid
}

func (v *Validator) log() *slog.Logger {
	if v == nil || v.logger == nil {
		return slog.Default()
	}
	return v.logger
}

// Validate is Validator.Validate using the default logger.
func Validate(record Record, fields []string, sink Sink, opts ...Option) bool {
	return New(nil).Validate(record, fields, sink, opts...)
}
