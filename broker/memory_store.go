package broker

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store[T]. It is concurrency-safe.
type MemoryStore[T any] struct {
	mu   sync.RWMutex
	byID map[string]Pending[T]
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{byID: make(map[string]Pending[T])}
}

func (s *MemoryStore[T]) Put(_ context.Context, p Pending[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = p
	return nil
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (Pending[T], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok, nil
}

func (s *MemoryStore[T]) Complete(_ context.Context, id string) (Pending[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		var zero Pending[T]
		return zero, false, nil
	}
	delete(s.byID, id)
	return p, true, nil
}

func (s *MemoryStore[T]) Cancel(ctx context.Context, id string) (Pending[T], bool, error) {
	return s.Complete(ctx, id)
}

func (s *MemoryStore[T]) List(_ context.Context) ([]Pending[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Pending[T], 0, len(s.byID))
	for _, v := range s.byID {
		out = append(out, v)
	}
	return out, nil
}

func (s *MemoryStore[T]) Clear(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	s.byID = make(map[string]Pending[T])
	return ids, nil
}

var _ Store[int] = (*MemoryStore[int])(nil)
