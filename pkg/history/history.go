// Package history provides a bounded undo stack of deep-copied snapshots.
package history

// DefaultCapacity is the number of snapshots kept before the oldest is evicted
const DefaultCapacity = 80

// Stack is a fixed-capacity ring of snapshots. Pushing onto a full stack
// evicts the oldest entry. Every value is cloned on the way in so later
// mutation of the caller's state cannot reach a stored snapshot.
type Stack[T any] struct {
	buf   []T
	head  int // index of the oldest entry
	size  int
	clone func(T) T
}

// New creates a stack holding at most capacity snapshots
func New[T any](capacity int, clone func(T) T) *Stack[T] {
	if capacity < 1 {
		capacity = 1
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Stack[T]{
		buf:   make([]T, capacity),
		clone: clone,
	}
}

// Push stores a copy of v, evicting the oldest snapshot when full
func (s *Stack[T]) Push(v T) {
	c := s.clone(v)
	if s.size == len(s.buf) {
		s.buf[s.head] = c
		s.head = (s.head + 1) % len(s.buf)
		return
	}
	s.buf[(s.head+s.size)%len(s.buf)] = c
	s.size++
}

// Pop removes and returns the most recent snapshot. ok is false when empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.size == 0 {
		return v, false
	}
	i := (s.head + s.size - 1) % len(s.buf)
	v = s.buf[i]
	var zero T
	s.buf[i] = zero
	s.size--
	return v, true
}

// Len returns the number of stored snapshots
func (s *Stack[T]) Len() int {
	return s.size
}
