package stack

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyContainer is returned by Pop and Peek when the stack holds no
// values.
var ErrEmptyContainer = errors.New("stack is empty")

// Stack is a LIFO container of values of type T. The zero value is an empty
// stack ready for use.
type Stack[T any] struct {
	items []T
}

// New returns a stack with the given values pushed onto it in order, so the
// last value given ends up on top. The values are copied, so later changes to
// the caller's slice do not affect the stack.
func New[T any](values ...T) *Stack[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &Stack[T]{items: items}
}

// IsEmpty returns true when the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top value and returns it. If the stack is empty, it returns
// the zero value of T with ErrEmptyContainer.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyContainer
	}

	n := len(s.items) - 1
	item := s.items[n]

	// release the reference so popped pointers can be collected
	s.items[n] = zero
	s.items = s.items[:n]

	return item, nil
}

// Peek returns the top value without removing it. If the stack is empty, it
// returns the zero value of T with ErrEmptyContainer.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyContainer
	}
	return s.items[len(s.items)-1], nil
}

// MustPop works like Pop, but panics with ErrEmptyContainer if the stack is
// empty.
func (s *Stack[T]) MustPop() T {
	item, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return item
}

// MustPeek works like Peek, but panics with ErrEmptyContainer if the stack is
// empty.
func (s *Stack[T]) MustPeek() T {
	item, err := s.Peek()
	if err != nil {
		panic(err)
	}
	return item
}

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// All iterates over the values from the bottom of the stack to the top. The
// stack must not be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// String renders the stack from bottom to top, e.g., "Stack[1 2 3]".
func (s *Stack[T]) String() string {
	var buf strings.Builder
	buf.WriteString("Stack[")
	for i, item := range s.items {
		if i > 0 {
			buf.WriteByte(' ')
		}
		_, _ = fmt.Fprint(&buf, item)
	}
	buf.WriteByte(']')
	return buf.String()
}
