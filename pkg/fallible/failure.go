package fallible

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Failure is the error raised by unchecked forms when no custom mapper
// produced something else. It keeps the original error as cause and stamps
// identity for diagnostics.
type Failure struct {
	id        uuid.UUID
	createdAt time.Time
	cause     error
}

// NewFailure wraps cause in a fresh Failure. A cause that already is a
// Failure is returned as-is, so repeated wrapping cannot nest.
func NewFailure(cause error) *Failure {
	if f, ok := cause.(*Failure); ok {
		return f
	}
	return &Failure{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
	}
}

func (f *Failure) Error() string {
	if f.cause == nil {
		return "fallible: failure"
	}
	return "fallible: " + f.cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Cause returns the wrapped error
func (f *Failure) Cause() error {
	return f.cause
}

// Id returns the failure identity
func (f *Failure) Id() uuid.UUID {
	return f.id
}

// CreatedAt returns the wrapping time (UTC)
func (f *Failure) CreatedAt() time.Time {
	return f.createdAt
}

// AsFailure unwraps err looking for a Failure
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFailure reports whether err is or wraps a Failure
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}
