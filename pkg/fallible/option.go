package fallible

import "fmt"

// Option is a value that may be absent. Lift conversions yield None for a
// failed operation and Some for a successful one.
type Option[T any] struct {
	value T
	ok    bool
}

// Some builds a present Option
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None builds an absent Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOr returns the value, or def when absent
func (o Option[T]) GetOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Unwrap returns the value and panics when it is absent
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("fallible: Unwrap on empty Option")
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
