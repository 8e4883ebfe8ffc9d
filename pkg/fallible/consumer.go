package fallible

// Consumer wraps a void operation on T that may fail.
type Consumer[T any] func(t T) error

// AsConsumer adapts a raw void operation
func AsConsumer[T any](c func(t T) error) Consumer[T] {
	return c
}

// FailingConsumer builds a Consumer failing with supply's error on every
// call
func FailingConsumer[T any](supply func() error) Consumer[T] {
	return func(T) error {
		return supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (c Consumer[T]) Unchecked() func(t T) {
	return c.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (c Consumer[T]) UncheckedWith(m Mapper) func(t T) {
	return func(t T) {
		if err := c(t); err != nil {
			rethrow(m, err)
		}
	}
}

// Lift returns a form reporting whether the operation ran without failure.
// Void shapes have no value to make optional, so the report is the lifted
// product.
func (c Consumer[T]) Lift() func(t T) bool {
	return func(t T) bool {
		return c(t) == nil
	}
}

// Ignore returns a form swallowing the failure
func (c Consumer[T]) Ignore() func(t T) {
	return func(t T) {
		_ = c(t)
	}
}

// AndThen runs next after c. c's failure propagates without invoking next.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return next(t)
	}
}

// BiConsumer wraps a void operation on (T, U) that may fail.
type BiConsumer[T, U any] func(t T, u U) error

// AsBiConsumer adapts a raw two-argument void operation
func AsBiConsumer[T, U any](c func(t T, u U) error) BiConsumer[T, U] {
	return c
}

// FailingBiConsumer builds a BiConsumer failing with supply's error on
// every call
func FailingBiConsumer[T, U any](supply func() error) BiConsumer[T, U] {
	return func(T, U) error {
		return supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (c BiConsumer[T, U]) Unchecked() func(t T, u U) {
	return c.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (c BiConsumer[T, U]) UncheckedWith(m Mapper) func(t T, u U) {
	return func(t T, u U) {
		if err := c(t, u); err != nil {
			rethrow(m, err)
		}
	}
}

// Lift returns a form reporting whether the operation ran without failure
func (c BiConsumer[T, U]) Lift() func(t T, u U) bool {
	return func(t T, u U) bool {
		return c(t, u) == nil
	}
}

// Ignore returns a form swallowing the failure
func (c BiConsumer[T, U]) Ignore() func(t T, u U) {
	return func(t T, u U) {
		_ = c(t, u)
	}
}

// AndThen runs next after c. c's failure propagates without invoking next.
func (c BiConsumer[T, U]) AndThen(next BiConsumer[T, U]) BiConsumer[T, U] {
	return func(t T, u U) error {
		if err := c(t, u); err != nil {
			return err
		}
		return next(t, u)
	}
}
