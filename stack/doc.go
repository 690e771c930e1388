// Package stack provides Stack, a generic last-in-first-out container.
//
// A Stack is built on a slice that only grows and shrinks at one end, the
// top. Values are pushed onto the top and popped back off in reverse order:
//
//	s := stack.New(1, 2, 3)
//	top, _ := s.Pop() // 3
//	next, _ := s.Peek() // 2, left in place
//
// Calling Pop or Peek on an empty Stack is a programming mistake. Those
// methods return ErrEmptyContainer rather than inventing a value, so callers
// should check IsEmpty (or Size) first when an empty stack is possible. The
// MustPop and MustPeek variants panic instead.
//
// A Stack is not safe for concurrent mutation. If more than one goroutine
// needs the same Stack, guard it with a sync.Mutex.
package stack
