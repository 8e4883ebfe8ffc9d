package future

import "github.com/ib-77/fallible/pkg/fallible"

// Func stages op: the returned form runs op synchronously and wraps its
// outcome in a completed Future
func Func[T, R any](op fallible.Func[T, R]) func(t T) *Future[R] {
	return func(t T) *Future[R] {
		v, err := op(t)
		if err != nil {
			return Rejected[R](err)
		}
		return Settled(v)
	}
}

// BiFunc stages a two-argument op
func BiFunc[T, U, R any](op fallible.BiFunc[T, U, R]) func(t T, u U) *Future[R] {
	return func(t T, u U) *Future[R] {
		v, err := op(t, u)
		if err != nil {
			return Rejected[R](err)
		}
		return Settled(v)
	}
}

// Predicate stages op; settled holders carry the verdict
func Predicate[T any](op fallible.Predicate[T]) func(t T) *Future[bool] {
	return func(t T) *Future[bool] {
		ok, err := op(t)
		if err != nil {
			return Rejected[bool](err)
		}
		return Settled(ok)
	}
}

// BiPredicate stages a two-argument op
func BiPredicate[T, U any](op fallible.BiPredicate[T, U]) func(t T, u U) *Future[bool] {
	return func(t T, u U) *Future[bool] {
		ok, err := op(t, u)
		if err != nil {
			return Rejected[bool](err)
		}
		return Settled(ok)
	}
}

// Supplier stages op
func Supplier[R any](op fallible.Supplier[R]) func() *Future[R] {
	return func() *Future[R] {
		v, err := op()
		if err != nil {
			return Rejected[R](err)
		}
		return Settled(v)
	}
}

// Consumer stages op; a settled holder carries Unit
func Consumer[T any](op fallible.Consumer[T]) func(t T) *Future[fallible.Unit] {
	return func(t T) *Future[fallible.Unit] {
		if err := op(t); err != nil {
			return Rejected[fallible.Unit](err)
		}
		return Settled(fallible.Unit{})
	}
}

// BiConsumer stages a two-argument op
func BiConsumer[T, U any](op fallible.BiConsumer[T, U]) func(t T, u U) *Future[fallible.Unit] {
	return func(t T, u U) *Future[fallible.Unit] {
		if err := op(t, u); err != nil {
			return Rejected[fallible.Unit](err)
		}
		return Settled(fallible.Unit{})
	}
}

// Runnable stages op; a settled holder carries Unit
func Runnable(op fallible.Runnable) func() *Future[fallible.Unit] {
	return func() *Future[fallible.Unit] {
		if err := op(); err != nil {
			return Rejected[fallible.Unit](err)
		}
		return Settled(fallible.Unit{})
	}
}
