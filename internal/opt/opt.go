// Package opt distinguishes the three states a JSON update field can be in:
// absent from the payload, explicitly null, or set to a value. Plain
// pointers collapse the first two, which makes it impossible to clear a
// nullable column on purpose.
package opt

import "encoding/json"

type Field[T any] struct {
	value T
	set   bool
	valid bool
}

// Of returns a field set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, valid: true}
}

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// Set reports whether the field appeared in the payload at all.
func (f Field[T]) Set() bool { return f.set }

// Valid reports whether the field carries a non-null value.
func (f Field[T]) Valid() bool { return f.valid }

// Value returns the value; the zero value when null or absent.
func (f Field[T]) Value() T { return f.value }

// Ptr returns the value as a pointer, nil when null or absent. Handy for
// binding directly into a nullable SQL column.
func (f Field[T]) Ptr() *T {
	if !f.valid {
		return nil
	}

	v := f.value

	return &v
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the absent/null distinction observable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true

	if string(data) == "null" {
		f.valid = false

		return nil
	}

	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}

	f.valid = true

	return nil
}
