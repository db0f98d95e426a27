package memory

import (
	"sync"

	"github.com/samber/lo"
)

// Record is anything the store can hold
type Record interface {
	GetID() int
}

// InMemoryStore keeps records in insertion order together with the
// counter for the next id. Ids are never reused, deleting the last
// record does not roll the counter back. Every read and write goes
// through clone so callers never alias what is stored.
type InMemoryStore[T Record] struct {
	mu     sync.RWMutex
	items  []T
	nextID int
	clone  func(T) T
	seed   []T
}

// NewInMemoryStore creates a store holding seed; the counter starts at
// len(seed)+1
func NewInMemoryStore[T Record](clone func(T) T, seed ...T) *InMemoryStore[T] {
	s := &InMemoryStore[T]{clone: clone, seed: seed}
	s.Reset()
	return s
}

// List returns every record in insertion order
func (s *InMemoryStore[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.items, func(item T, _ int) T { return s.clone(item) })
}

// Get returns the record with the given id
func (s *InMemoryStore[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := lo.Find(s.items, func(item T) bool { return item.GetID() == id })
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(item), true
}

// Create reserves the next id, builds the record with it and appends it
func (s *InMemoryStore[T]) Create(build func(id int) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	item := s.clone(build(id))
	s.items = append(s.items, item)
	return s.clone(item)
}

// Update runs mutate on a copy of the record and stores the result if
// mutate succeeds. The lock is held for the whole read-modify-write.
// The bool is false when no record has the id.
func (s *InMemoryStore[T]) Update(id int, mutate func(T) error) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	_, idx, ok := lo.FindIndexOf(s.items, func(item T) bool { return item.GetID() == id })
	if !ok {
		return zero, false, nil
	}

	updated := s.clone(s.items[idx])
	if err := mutate(updated); err != nil {
		return zero, true, err
	}

	s.items[idx] = updated
	return s.clone(updated), true, nil
}

// Delete removes the record with the given id and reports whether
// anything was removed
func (s *InMemoryStore[T]) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = lo.Reject(s.items, func(item T, _ int) bool { return item.GetID() == id })
	return len(s.items) != before
}

// Reset puts the seed back and restarts the counter
func (s *InMemoryStore[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = lo.Map(s.seed, func(item T, _ int) T { return s.clone(item) })
	s.nextID = len(s.seed) + 1
}
