package fallible

// Mapper selects or builds the error an unchecked form panics with, given
// the original error. A nil Mapper, or a Mapper returning nil, falls back
// to WrapFailure.
type Mapper func(err error) error

// WrapFailure is the built-in default mapping: wrap err in a Failure,
// keeping an existing Failure untouched.
func WrapFailure(err error) error {
	return NewFailure(err)
}
