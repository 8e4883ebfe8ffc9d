package fallible

// Func wraps a unit of work from T to R that may fail.
type Func[T, R any] func(t T) (R, error)

// AsFunc adapts a raw function so conversions can chain without spelled
// out type arguments, e.g. fallible.AsFunc(strconv.Atoi).Lift()
func AsFunc[T, R any](f func(t T) (R, error)) Func[T, R] {
	return f
}

// FailingFunc builds a Func failing with supply's error on every call,
// regardless of input. supply must return a non-nil error.
func FailingFunc[T, R any](supply func() error) Func[T, R] {
	return func(T) (R, error) {
		var zero R
		return zero, supply()
	}
}

// Unchecked returns the no-error form: the result on success, a panic with
// the default-mapped failure otherwise
func (f Func[T, R]) Unchecked() func(t T) R {
	return f.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper. Pass a
// registry's Mapper() to resolve the mapping by failure type.
func (f Func[T, R]) UncheckedWith(m Mapper) func(t T) R {
	return func(t T) R {
		v, err := f(t)
		if err != nil {
			rethrow(m, err)
		}
		return v
	}
}

// Lift returns a form yielding Some on success and None on failure
func (f Func[T, R]) Lift() func(t T) Option[R] {
	return func(t T) Option[R] {
		return liftOption(f(t))
	}
}

// Ignore returns a form substituting the zero R on failure
func (f Func[T, R]) Ignore() func(t T) R {
	var zero R
	return f.IgnoreWith(zero)
}

// IgnoreWith returns a form substituting def on failure
func (f Func[T, R]) IgnoreWith(def R) func(t T) R {
	return func(t T) R {
		v, err := f(t)
		if err != nil {
			return def
		}
		return v
	}
}

// AndThen runs g on f's result. f's failure propagates without invoking g.
func AndThen[T, R, V any](f Func[T, R], g Func[R, V]) Func[T, V] {
	return func(t T) (V, error) {
		r, err := f(t)
		if err != nil {
			var zero V
			return zero, err
		}
		return g(r)
	}
}

// Compose runs f on before's result. before's failure propagates without
// invoking f.
func Compose[V, T, R any](f Func[T, R], before Func[V, T]) Func[V, R] {
	return func(v V) (R, error) {
		t, err := before(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(t)
	}
}

// BiFunc wraps a unit of work from (T, U) to R that may fail.
type BiFunc[T, U, R any] func(t T, u U) (R, error)

// AsBiFunc adapts a raw two-argument function
func AsBiFunc[T, U, R any](f func(t T, u U) (R, error)) BiFunc[T, U, R] {
	return f
}

// FailingBiFunc builds a BiFunc failing with supply's error on every call
func FailingBiFunc[T, U, R any](supply func() error) BiFunc[T, U, R] {
	return func(T, U) (R, error) {
		var zero R
		return zero, supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (f BiFunc[T, U, R]) Unchecked() func(t T, u U) R {
	return f.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (f BiFunc[T, U, R]) UncheckedWith(m Mapper) func(t T, u U) R {
	return func(t T, u U) R {
		v, err := f(t, u)
		if err != nil {
			rethrow(m, err)
		}
		return v
	}
}

// Lift returns a form yielding Some on success and None on failure
func (f BiFunc[T, U, R]) Lift() func(t T, u U) Option[R] {
	return func(t T, u U) Option[R] {
		return liftOption(f(t, u))
	}
}

// Ignore returns a form substituting the zero R on failure
func (f BiFunc[T, U, R]) Ignore() func(t T, u U) R {
	var zero R
	return f.IgnoreWith(zero)
}

// IgnoreWith returns a form substituting def on failure
func (f BiFunc[T, U, R]) IgnoreWith(def R) func(t T, u U) R {
	return func(t T, u U) R {
		v, err := f(t, u)
		if err != nil {
			return def
		}
		return v
	}
}

// AndThenBi runs g on f's result. f's failure propagates without invoking
// g.
func AndThenBi[T, U, R, V any](f BiFunc[T, U, R], g Func[R, V]) BiFunc[T, U, V] {
	return func(t T, u U) (V, error) {
		r, err := f(t, u)
		if err != nil {
			var zero V
			return zero, err
		}
		return g(r)
	}
}
