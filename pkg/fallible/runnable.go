package fallible

// Unit is the empty placeholder value: the result type staged void shapes
// settle with.
type Unit = struct{}

// Runnable wraps a void operation that may fail.
type Runnable func() error

// AsRunnable adapts a raw void operation
func AsRunnable(r func() error) Runnable {
	return r
}

// FailingRunnable builds a Runnable failing with supply's error on every
// call
func FailingRunnable(supply func() error) Runnable {
	return func() error {
		return supply()
	}
}

// Unchecked returns the no-error form, panicking with the default-mapped
// failure
func (r Runnable) Unchecked() func() {
	return r.UncheckedWith(nil)
}

// UncheckedWith is Unchecked with an explicit failure mapper
func (r Runnable) UncheckedWith(m Mapper) func() {
	return func() {
		if err := r(); err != nil {
			rethrow(m, err)
		}
	}
}

// Lift returns a form reporting whether the operation ran without failure
func (r Runnable) Lift() func() bool {
	return func() bool {
		return r() == nil
	}
}

// Ignore returns a form swallowing the failure
func (r Runnable) Ignore() func() {
	return func() {
		_ = r()
	}
}

// AndThen runs next after r. r's failure propagates without invoking next.
func (r Runnable) AndThen(next Runnable) Runnable {
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}
