package fallible

// Predicate wraps a test of T that may fail.
type Predicate[T any] func(t T) (bool, error)

// AsPredicate adapts a raw test function
func AsPredicate[T any](p func(t T) (bool, error)) Predicate[T] {
	return p
}

// FailingPredicate builds a Predicate failing with supply's error on every
// call
func FailingPredicate[T any](supply func() error) Predicate[T] {
	return func(T) (bool, error) {
		return false, supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (p Predicate[T]) Unchecked() func(t T) bool {
	return p.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (p Predicate[T]) UncheckedWith(m Mapper) func(t T) bool {
	return func(t T) bool {
		ok, err := p(t)
		if err != nil {
			rethrow(m, err)
		}
		return ok
	}
}

// Lift returns a form yielding the fixed false on failure. Predicates keep
// the primitive default rather than an optional; use IgnoreWith to pick
// the substitute verdict.
func (p Predicate[T]) Lift() func(t T) bool {
	return p.IgnoreWith(false)
}

// Ignore returns a form substituting false on failure
func (p Predicate[T]) Ignore() func(t T) bool {
	return p.IgnoreWith(false)
}

// IgnoreWith returns a form substituting def on failure
func (p Predicate[T]) IgnoreWith(def bool) func(t T) bool {
	return func(t T) bool {
		ok, err := p(t)
		if err != nil {
			return def
		}
		return ok
	}
}

// And short-circuits like &&: a false or failing p wins without o running
func (p Predicate[T]) And(o Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || !ok {
			return false, err
		}
		return o(t)
	}
}

// Or short-circuits like ||: a true p wins without o running; a failing p
// propagates its failure
func (p Predicate[T]) Or(o Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || ok {
			return ok, err
		}
		return o(t)
	}
}

// Negate inverts the verdict, propagating failures untouched
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// AndAll folds And over ps left to right. No predicates means true.
func AndAll[T any](ps ...Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		for _, p := range ps {
			ok, err := p(t)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// OrAll folds Or over ps left to right. No predicates means false.
func OrAll[T any](ps ...Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		for _, p := range ps {
			ok, err := p(t)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
}

// BiPredicate wraps a test of (T, U) that may fail.
type BiPredicate[T, U any] func(t T, u U) (bool, error)

// AsBiPredicate adapts a raw two-argument test function
func AsBiPredicate[T, U any](p func(t T, u U) (bool, error)) BiPredicate[T, U] {
	return p
}

// FailingBiPredicate builds a BiPredicate failing with supply's error on
// every call
func FailingBiPredicate[T, U any](supply func() error) BiPredicate[T, U] {
	return func(T, U) (bool, error) {
		return false, supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (p BiPredicate[T, U]) Unchecked() func(t T, u U) bool {
	return p.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (p BiPredicate[T, U]) UncheckedWith(m Mapper) func(t T, u U) bool {
	return func(t T, u U) bool {
		ok, err := p(t, u)
		if err != nil {
			rethrow(m, err)
		}
		return ok
	}
}

// Lift returns a form yielding the fixed false on failure
func (p BiPredicate[T, U]) Lift() func(t T, u U) bool {
	return p.IgnoreWith(false)
}

// Ignore returns a form substituting false on failure
func (p BiPredicate[T, U]) Ignore() func(t T, u U) bool {
	return p.IgnoreWith(false)
}

// IgnoreWith returns a form substituting def on failure
func (p BiPredicate[T, U]) IgnoreWith(def bool) func(t T, u U) bool {
	return func(t T, u U) bool {
		ok, err := p(t, u)
		if err != nil {
			return def
		}
		return ok
	}
}

// And short-circuits like &&: a false or failing p wins without o running
func (p BiPredicate[T, U]) And(o BiPredicate[T, U]) BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || !ok {
			return false, err
		}
		return o(t, u)
	}
}

// Or short-circuits like ||: a true p wins without o running
func (p BiPredicate[T, U]) Or(o BiPredicate[T, U]) BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || ok {
			return ok, err
		}
		return o(t, u)
	}
}

// Negate inverts the verdict, propagating failures untouched
func (p BiPredicate[T, U]) Negate() BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
