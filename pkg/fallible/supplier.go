package fallible

// Supplier wraps a producer of R that may fail.
type Supplier[R any] func() (R, error)

// AsSupplier adapts a raw producer function
func AsSupplier[R any](s func() (R, error)) Supplier[R] {
	return s
}

// FailingSupplier builds a Supplier failing with supply's error on every
// call
func FailingSupplier[R any](supply func() error) Supplier[R] {
	return func() (R, error) {
		var zero R
		return zero, supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (s Supplier[R]) Unchecked() func() R {
	return s.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (s Supplier[R]) UncheckedWith(m Mapper) func() R {
	return func() R {
		v, err := s()
		if err != nil {
			rethrow(m, err)
		}
		return v
	}
}

// Lift returns a form yielding Some on success and None on failure
func (s Supplier[R]) Lift() func() Option[R] {
	return func() Option[R] {
		return liftOption(s())
	}
}

// Ignore returns a form substituting the zero R on failure
func (s Supplier[R]) Ignore() func() R {
	var zero R
	return s.IgnoreWith(zero)
}

// IgnoreWith returns a form substituting def on failure
func (s Supplier[R]) IgnoreWith(def R) func() R {
	return func() R {
		v, err := s()
		if err != nil {
			return def
		}
		return v
	}
}

// Map runs g on s's product. s's failure propagates without invoking g.
func Map[R, V any](s Supplier[R], g Func[R, V]) Supplier[V] {
	return func() (V, error) {
		r, err := s()
		if err != nil {
			var zero V
			return zero, err
		}
		return g(r)
	}
}
