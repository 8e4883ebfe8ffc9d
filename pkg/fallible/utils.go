package fallible

import "reflect"

// IsNil reports whether i is nil, including a typed nil pointer boxed in
// an interface
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Causes splits err into its joined causes: a result of errors.Join
// unwraps to every joined error, anything else to itself. A nil err yields
// an empty slice.
func Causes(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	j, ok := err.(interface{ Unwrap() []error })
	if ok {
		return j.Unwrap()
	}

	return []error{err}
}
