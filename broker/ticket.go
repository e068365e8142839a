package broker

import (
	"context"
	"sync"
)

// Result represents a request resolution.
type Result struct {
	RequestID string
	Mode      Mode
	Value     string
	Err       error
}

// slot is a single-assignment response slot; only the first write is kept.
type slot struct {
	resultC chan Result
	written bool
	writes  int
	mu      sync.Mutex
}

func newSlot() *slot {
	return &slot{resultC: make(chan Result, 1)}
}

// write stores the result, it returns false if the slot was already written.
func (s *slot) write(result Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.written {
		return false
	}
	s.written = true
	s.writes++
	s.resultC <- result
	return true
}

func (s *slot) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Ticket is the caller side of a request response slot.
type Ticket struct {
	ID   string
	Mode Mode
	slot *slot
}

// C returns a channel that receives exactly one Result once the request is resolved.
// A cancelled request never delivers.
func (t *Ticket) C() <-chan Result {
	return t.slot.resultC
}

// Wait blocks until the request is resolved or ctx is done.
func (t *Ticket) Wait(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case result := <-t.slot.resultC:
		return result, nil
	}
}

// Writes returns the number of results written to the slot (0 or 1).
func (t *Ticket) Writes() int {
	return t.slot.count()
}
