package broker

import (
	"time"

	"github.com/rs/zerolog"
)

// Policy controls what happens when a request is started while another one is outstanding.
type Policy int

const (
	// Reject fails the new start with ErrBusy.
	Reject Policy = iota
	// Supersede cancels the outstanding request (without resolving it) and starts the new one.
	Supersede
)

// Option represents coordinator option
type Option func(c *Coordinator)

// WithLogger sets the diagnostic logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithPolicy sets the outstanding request policy
func WithPolicy(policy Policy) Option {
	return func(c *Coordinator) {
		c.policy = policy
	}
}

// WithListenTimeout sets a backstop expiry for outstanding requests, zero disables it.
func WithListenTimeout(timeout time.Duration) Option {
	return func(c *Coordinator) {
		c.listenTimeout = timeout
	}
}

// WithStore sets the pending request store
func WithStore(store Store[*Request]) Option {
	return func(c *Coordinator) {
		c.store = store
	}
}

// WithIDGenerator sets request ID generator
func WithIDGenerator(fn func() string) Option {
	return func(c *Coordinator) {
		c.newID = fn
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}
