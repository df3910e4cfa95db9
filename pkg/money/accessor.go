package money

// Field is a Money view over a raw string field, such as a nullable string
// column or a form value. Reads parse the raw value, writes store the
// canonical form.
type Field struct {
	get func() (string, bool)
	set func(raw string, ok bool)
}

// NullableField returns a Field over a *string field; nil means no amount.
func NullableField(p **string) Field {
	return Field{
		get: func() (string, bool) {
			if *p == nil {
				return "", false
			}
			return **p, true
		},
		set: func(raw string, ok bool) {
			if !ok {
				*p = nil
				return
			}
			*p = &raw
		},
	}
}

// StringField returns a Field over a string field; "" means no amount.
func StringField(p *string) Field {
	return Field{
		get: func() (string, bool) { return *p, *p != "" },
		set: func(raw string, _ bool) { *p = raw },
	}
}

// Money parses the raw value. It returns ok == false when there is no raw
// value; parse errors are returned unchanged.
func (f Field) Money() (m Money, ok bool, err error) {
	raw, ok := f.get()
	if !ok {
		return Money{}, false, nil
	}
	if m, err = Parse(raw); err != nil {
		return Money{}, false, err
	}
	return m, true, nil
}

// Set stores the canonical form of m, or clears the raw value when m is nil.
func (f Field) Set(m *Money) {
	if m == nil {
		f.set("", false)
		return
	}
	f.set(m.String(), true)
}
