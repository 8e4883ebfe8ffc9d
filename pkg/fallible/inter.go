package fallible

import "time"

// Outcome is the read side of a settled result holder, such as
// future.Future. Staged conversions return holders satisfying it.
type Outcome[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt returns the holder creation time (UTC)
	CreatedAt() time.Time
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
}
