package future

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Future is a completed result holder: settled with a value or rejected
// with an error, fixed at construction.
type Future[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	result    R
	err       error
	isSuccess bool
}

// Settled builds a Future completed with r
func Settled[R any](r R) *Future[R] {
	f := &Future[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
		result:    r,
		isSuccess: true,
	}
	close(f.done)
	return f
}

// Rejected builds a Future completed with err
func Rejected[R any](err error) *Future[R] {
	f := &Future[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
		err:       err,
	}
	close(f.done)
	return f
}

// Result returns the successful result value
func (f *Future[R]) Result() R {
	return f.result
}

// Err returns the error if the operation failed
func (f *Future[R]) Err() error {
	return f.err
}

// IsSuccess returns true if the operation succeeded
func (f *Future[R]) IsSuccess() bool {
	return f.isSuccess
}

// CreatedAt returns the holder creation time (UTC)
func (f *Future[R]) CreatedAt() time.Time {
	return f.createdAt
}

// Id returns the holder identity
func (f *Future[R]) Id() uuid.UUID {
	return f.id
}

// Done is closed once the Future completes. For a Future built by this
// package that is before Done can be observed.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Await returns the outcome. A completed Future wins over a finished ctx;
// an open holder (the zero Future) waits until ctx ends and returns its
// error.
func (f *Future[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	default:
	}

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
