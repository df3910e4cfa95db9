package validator

import (
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// Tag is the struct tag registered by RegisterTag.
const Tag = "money"

// RegisterTag registers the "money" validation tag on v. Tagged string or
// *string fields must hold a canonical monetary value satisfying opts.
// Empty strings and nil pointers pass; combine with "required" to demand a
// value.
func RegisterTag(v *playground.Validate, opts ...Option) error {
	return v.RegisterValidation(Tag, func(fl playground.FieldLevel) bool {
		field := fl.Field()
		if !isStringLike(field) {
			return false
		}
		raw, ok := rawString(field)
		if !ok {
			return true
		}
		_, failed := Message(raw, opts...)
		return !failed
	}, true)
}

func isStringLike(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}
