// Package optional provides Optional[T], a value that may be absent
// without resorting to pointers or sentinel values.
//
// The zero Optional is empty, so Optional fields are safe to embed in
// structs without initialization. Absent values marshal to JSON/YAML null
// and null unmarshals back to an empty Optional, which makes Optional
// fields practical in config structs.
package optional

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Optional holds either a value of type T or nothing.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional holding *p, or an empty Optional when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether o holds nothing.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value and panics when o is empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet on empty Optional")
	}
	return o.value
}

// OrElse returns the held value, or fallback when o is empty.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the held value, or the result of supply when o is
// empty. supply is only called when needed.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// Or returns o when it holds a value, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the held value, or nil when o is empty.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Filter returns o when it holds a value satisfying keep, otherwise an
// empty Optional.
func (o Optional[T]) Filter(keep func(T) bool) Optional[T] {
	if o.present && keep(o.value) {
		return o
	}
	return Empty[T]()
}

// IfPresent calls do with the held value when one is present.
func (o Optional[T]) IfPresent(do func(T)) {
	if o.present {
		do(o.value)
	}
}

// String formats as the held value, or "<empty>".
func (o Optional[T]) String() string {
	if !o.present {
		return "<empty>"
	}
	return fmt.Sprintf("%v", o.value)
}

// Map transforms the held value with m, propagating emptiness.
// Package-level because Go methods cannot introduce type parameters.
func Map[T, R any](o Optional[T], m func(T) R) Optional[R] {
	if !o.present {
		return Empty[R]()
	}
	return Of(m(o.value))
}

// FlatMap transforms the held value with m, flattening the result.
func FlatMap[T, R any](o Optional[T], m func(T) Optional[R]) Optional[R] {
	if !o.present {
		return Empty[R]()
	}
	return m(o.value)
}

// MarshalJSON encodes the held value, or null when empty.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as empty and any other value as present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

// MarshalYAML encodes the held value, or null when empty.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a null node as empty and any other node as present.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}
