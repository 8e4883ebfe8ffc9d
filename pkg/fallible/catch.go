package fallible

// Recover is a deferred helper converting an error-typed panic back into
// an ordinary returned error:
//
//	func parse(s string) (n int, err error) {
//		defer fallible.Recover(&err)
//		return fallible.AsFunc(strconv.Atoi).Unchecked()(s), nil
//	}
//
// Panics carrying anything but an error resume unchanged.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	*errp = err
}

// Catch runs fn, turning an error-typed panic into the returned error
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
