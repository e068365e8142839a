package broker

import (
	"context"
	"time"
)

// Pending represents a typed outstanding request bound to its listening mode.
type Pending[T any] struct {
	ID   string
	Mode Mode

	CreatedAt time.Time
	ExpiresAt time.Time // zero means no backstop expiry

	Data T
}

// Store is a backing registry for outstanding requests keyed by request ID.
// Complete and Cancel remove and return an entry, so only the first caller observes it.
type Store[T any] interface {
	Put(ctx context.Context, p Pending[T]) error
	Get(ctx context.Context, id string) (Pending[T], bool, error)
	Complete(ctx context.Context, id string) (Pending[T], bool, error)
	Cancel(ctx context.Context, id string) (Pending[T], bool, error)

	List(ctx context.Context) ([]Pending[T], error)
	Clear(ctx context.Context) ([]string, error)
}
