package validator

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotStruct is returned by Struct for values that are not structs.
var ErrNotStruct = errors.New("record is not a struct")

// Record exposes the raw string value of a field by name.
// ok is false when the field has no value.
type Record interface {
	Field(name string) (raw string, ok bool)
}

// Map is a Record over plain strings. Missing keys are absent values; an
// empty string is a present, invalid value.
type Map map[string]string

// Field implements Record.
func (m Map) Field(name string) (string, bool) {
	raw, ok := m[name]
	return raw, ok
}

// PtrMap is a Record over nullable strings. Missing keys and nil values are
// absent.
type PtrMap map[string]*string

// Field implements Record.
func (m PtrMap) Field(name string) (string, bool) {
	raw := m[name]
	if raw == nil {
		return "", false
	}
	return *raw, true
}

// RecordFunc adapts a function to a Record.
type RecordFunc func(name string) (string, bool)

// Field implements Record.
func (f RecordFunc) Field(name string) (string, bool) {
	return f(name)
}

type structRecord struct {
	v reflect.Value
}

// Struct returns a Record over the exported string and *string fields of
// a struct or struct pointer. A field is looked up by its `money:"name"`
// tag when present, by its Go name otherwise. Nil pointers and empty
// strings are absent values.
func Struct(v any) (Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotStruct, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStruct, v)
	}
	return structRecord{v: rv}, nil
}

func (r structRecord) Field(name string) (string, bool) {
	t := r.v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Name
		if tag, ok := f.Tag.Lookup("money"); ok {
			key = tag
		}
		if key == name {
			return rawString(r.v.Field(i))
		}
	}
	return "", false
}

// rawString extracts a non-empty string through pointers and interfaces.
func rawString(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String || v.String() == "" {
		return "", false
	}
	return v.String(), true
}
