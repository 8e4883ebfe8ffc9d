package fallible

// rethrow raises the unchecked form of err. The explicit mapper wins; a
// nil mapper, or a mapper producing nil, falls back to WrapFailure so the
// raised value is never nil.
func rethrow(m Mapper, err error) {
	if m == nil {
		panic(WrapFailure(err))
	}

	mapped := m(err)
	if IsNil(mapped) {
		mapped = WrapFailure(err)
	}
	panic(mapped)
}

// liftOption folds a (value, error) pair into an Option
func liftOption[R any](v R, err error) Option[R] {
	if err != nil {
		return None[R]()
	}
	return Some(v)
}
