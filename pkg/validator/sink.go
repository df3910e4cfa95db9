package validator

import (
	"maps"
	"slices"
)

// Sink receives validation messages.
// Any type with an Add(field, message string) method is a Sink.
type Sink interface {
	Add(field, message string)
}

// Messages collects messages per field. A *Messages is a Sink; the map is
// allocated on the first message.
type Messages map[string][]string

// Add appends message to the messages of field.
func (m *Messages) Add(field, message string) {
	if *m == nil {
		*m = Messages{}
	}
	(*m)[field] = append((*m)[field], message)
}

// Fields returns the fields holding messages, sorted.
func (m Messages) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

// AdderFunc adapts a function to a Sink.
type AdderFunc func(field, message string)

// Add implements Sink.
func (f AdderFunc) Add(field, message string) {
	f(field, message)
}
