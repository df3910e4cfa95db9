package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (m Money) MarshalText() ([]byte, error) {
	if !m.currency.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, string(m.currency))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (m *Money) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. Money is encoded as a JSON string
// holding the canonical form.
func (m Money) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
// It accepts the canonical string form or an object
// {"cents": 1040, "currency": "EUR"}. A JSON null leaves m unchanged.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
		return m.UnmarshalText([]byte(s))
	}

	var aux struct {
		Cents    *int64 `json:"cents"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if aux.Cents == nil {
		return fmt.Errorf("%w: missing cents in %s", ErrParse, data)
	}
	v, err := New(*aux.Cents, Code(aux.Currency))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements driver.Valuer, storing the canonical string.
func (m Money) Value() (driver.Value, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan implements sql.Scanner for string columns holding the canonical form.
// NULL is rejected; scan nullable columns into a *string and use NullableField.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return m.UnmarshalText([]byte(v))
	case []byte:
		return m.UnmarshalText(v)
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into Money", ErrParse)
	default:
		return fmt.Errorf("%w: cannot scan %T into Money", ErrParse, src)
	}
}
