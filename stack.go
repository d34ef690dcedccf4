// stack.go — the typed LIFO stack underlying every part of the machine.
//
// One generic implementation backs all stack kinds (boolean, integer, float,
// name, code, exec, vectors). Indexing for Copy/Yank/Shove counts from the
// top, 0-based, and is min-max corrected the way Push corrects all indices:
// out-of-range arguments are clamped, never faulted on.
//
// Capacity policy: a stack may carry a maximum length. Pushing onto a full
// stack silently drops the new value — runaway growth of evolved programs is
// bounded by data loss, not by errors.
package pustgp

import (
	"fmt"
	"strings"
)

// Stack is a LIFO sequence of one atom kind. The zero value is an empty,
// unbounded stack. Not safe for concurrent use; a stack belongs to exactly
// one run at a time.
type Stack[T any] struct {
	items []T
	max   int // 0 = unbounded
}

// NewStack returns an empty stack with the given capacity (0 = unbounded).
func NewStack[T any](max int) *Stack[T] {
	return &Stack[T]{max: max}
}

// SetMax configures the capacity cap (0 = unbounded). An already
// over-full stack is left as-is; only future pushes are dropped.
func (s *Stack[T]) SetMax(max int) { s.max = max }

// Push places v on top. If the stack is at capacity the push is silently
// dropped and the stack is unchanged.
func (s *Stack[T]) Push(v T) {
	if s.max > 0 && len(s.items) >= s.max {
		return
	}
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. The second return is false on an
// empty stack; callers treat that as "do nothing this step".
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// PopN removes the top n elements and returns them in stack order: the
// former top is the last slice element. Returns false (and removes nothing)
// when fewer than n elements are present.
func (s *Stack[T]) PopN(n int) ([]T, bool) {
	if n < 0 || len(s.items) < n {
		return nil, false
	}
	out := make([]T, n)
	copy(out, s.items[len(s.items)-n:])
	s.items = s.items[:len(s.items)-n]
	return out, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Copy returns the element at depth i (0 = top) without removing it.
// The index is clamped into range; false only on an empty stack.
func (s *Stack[T]) Copy(i int) (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1-s.clamp(i)], true
}

// CopyN returns the top n elements in stack order (top last) without
// removing them.
func (s *Stack[T]) CopyN(n int) ([]T, bool) {
	if n < 0 || len(s.items) < n {
		return nil, false
	}
	out := make([]T, n)
	copy(out, s.items[len(s.items)-n:])
	return out, true
}

// Yank removes the element at depth i and pushes it on top ("do sooner").
func (s *Stack[T]) Yank(i int) bool {
	if len(s.items) == 0 {
		return false
	}
	idx := len(s.items) - 1 - s.clamp(i)
	v := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.items = append(s.items, v)
	return true
}

// Shove removes the top element and inserts it at depth i ("do later").
func (s *Stack[T]) Shove(i int) bool {
	v, ok := s.Pop()
	if !ok {
		return false
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.items) {
		i = len(s.items)
	}
	idx := len(s.items) - i
	s.items = append(s.items, v)
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = v
	return true
}

// Replace overwrites the element at depth i (0 = top). False on an empty
// stack; the index is clamped like everywhere else.
func (s *Stack[T]) Replace(i int, v T) bool {
	if len(s.items) == 0 {
		return false
	}
	s.items[len(s.items)-1-s.clamp(i)] = v
	return true
}

// Depth reports the current number of elements.
func (s *Stack[T]) Depth() int { return len(s.items) }

// Flush empties the stack.
func (s *Stack[T]) Flush() { s.items = s.items[:0] }

// clamp min-max corrects a depth index against the current size.
func (s *Stack[T]) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s.items)-1 {
		return len(s.items) - 1
	}
	return i
}

// String renders the stack top-first as "1:top; 2:next; ...". Used by tests
// and the REPL state dump.
func (s *Stack[T]) String() string {
	var b strings.Builder
	for i := len(s.items) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%d:%v; ", len(s.items)-i, s.items[i])
	}
	return strings.TrimSuffix(b.String(), " ")
}
