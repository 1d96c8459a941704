package status

import (
	"context"
	"errors"
)

// ErrUnavailable marks operations attempted while no store connection was
// ever established (missing credentials, empty address).
var ErrUnavailable = errors.New("status store not configured")

// OpError wraps a store fault from an established connection. Op is "put"
// or "list".
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return "status store " + e.Op + ": " + e.Err.Error() }
func (e *OpError) Unwrap() error { return e.Err }

// Store is the persistence gateway for checks. List returns at most limit
// records in storage order along with the number of stored records that
// could not be decoded and were skipped.
type Store interface {
	Put(ctx context.Context, c *Check) error
	List(ctx context.Context, limit int) ([]*Check, int, error)
	Ping(ctx context.Context) error
}
