package broker

import (
	"sync"

	"github.com/viant/otp/platform"
)

// subscription represents one broadcast receiver registration owned by a request.
type subscription struct {
	handle    platform.Handle
	kind      platform.BroadcastKind
	requestID string
	ui        platform.UI

	registered bool
	released   bool
	mu         sync.Mutex
}

// markRegistered records a completed registration, it returns false when the subscription
// was released while registering, in which case the caller has to unregister it.
func (s *subscription) markRegistered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return false
	}
	s.registered = true
	return true
}

// release marks the subscription released, it returns true if the platform receiver has to be unregistered.
func (s *subscription) release() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return false
	}
	s.released = true
	return s.registered
}
