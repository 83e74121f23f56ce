// Package stack implements a generic LIFO container backed by a singly-linked
// chain of frames, with caller-supplied behaviors for deleting and stringifying
// stored payloads.
//
// The container never interprets payload contents: every payload-specific
// behavior is delegated to the two functions supplied at construction. Read
// operations are nil-receiver safe and degrade to empty results; only Push
// reports an error when invoked on an absent stack.
package stack

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// DeleteFunc takes ownership of a payload and releases every resource it owns.
type DeleteFunc[T any] func(T)

// StringFunc borrows a payload and produces an owned, independent string
// representation. It must not mutate the payload.
type StringFunc[T any] func(T) string

// Construction and mutation failure sentinels, matched with errors.Is.
var (
	// ErrNilBehavior indicates construction without a required behavior.
	ErrNilBehavior = errors.New("stack: delete and stringify behaviors are required")

	// ErrNilStack indicates a mutating operation on an absent stack.
	ErrNilStack = errors.New("stack: nil stack")
)

// Discard is a DeleteFunc for payloads that own no resources.
func Discard[T any](T) {}

// Sprint is a StringFunc delegating to fmt.Sprint.
func Sprint[T any](data T) string {
	return fmt.Sprint(data)
}

// Frame is a single stack element owning one payload and a link to the frame
// below it. Traversal visitors receive frames directly and may inspect
// structural context through the read-only accessors; linkage is not mutable
// from outside the package.
type Frame[T any] struct {
	data T
	next *Frame[T]
}

// Data returns the frame's payload. Ownership stays with the frame.
func (f *Frame[T]) Data() T {
	return f.data
}

// Next returns the frame below, or nil at the bottom of the stack.
func (f *Frame[T]) Next() *Frame[T] {
	return f.next
}

// Stack is the container head. It owns the top frame and, transitively, every
// payload not yet popped. A Stack is not safe for concurrent use; callers must
// serialize access externally.
type Stack[T any] struct {
	top  *Frame[T]
	size int

	deleteFn DeleteFunc[T]
	stringFn StringFunc[T]
}

// New constructs an empty stack bound to the given behaviors.
// Fails with ErrNilBehavior if either behavior is nil.
func New[T any](deleteFn DeleteFunc[T], stringFn StringFunc[T]) (*Stack[T], error) {
	if deleteFn == nil || stringFn == nil {
		return nil, ErrNilBehavior
	}

	return &Stack[T]{
		deleteFn: deleteFn,
		stringFn: stringFn,
	}, nil
}

// Push wraps data in a new frame and links it above the current top,
// transferring ownership of data to the stack. Fails with ErrNilStack on an
// absent stack, leaving nothing mutated.
func (s *Stack[T]) Push(data T) error {
	if s == nil {
		return ErrNilStack
	}

	s.top = &Frame[T]{data: data, next: s.top}
	s.size++
	return nil
}

// Peek returns the top payload without transferring ownership or mutating the
// stack. Returns mo.None if the stack is absent or empty. A peeked value is
// still owned by the stack and must not be passed to the delete behavior.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s == nil || s.top == nil {
		return mo.None[T]()
	}

	return mo.Some(s.top.data)
}

// Pop unlinks the top frame and returns its payload, transferring ownership to
// the caller. Pop does not invoke the delete behavior; the caller becomes
// responsible for the payload's resources. Returns mo.None, with no mutation,
// if the stack is absent or empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s == nil || s.top == nil {
		return mo.None[T]()
	}

	frame := s.top
	s.top = frame.next
	s.size--

	frame.next = nil
	return mo.Some(frame.data)
}

// Clear pops every element and immediately passes each popped payload through
// the delete behavior. No-op on an absent stack. Afterwards the stack is empty
// and remains valid for reuse.
func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}

	for {
		data, ok := s.Pop().Get()
		if !ok {
			return
		}
		s.deleteFn(data)
	}
}

// Destroy releases every element through the delete behavior. Under managed
// memory the stack's own release reduces to the caller dropping the last
// reference, which is the caller's obligation after Destroy returns. No-op on
// an absent stack.
func (s *Stack[T]) Destroy() {
	s.Clear()
}

// Size returns the element count, or 0 for an absent stack.
func (s *Stack[T]) Size() int {
	if s == nil {
		return 0
	}

	return s.size
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Map invokes visit once per frame from top to bottom, exposing structural
// context. The visitor must not push to or pop from the stack during the
// traversal. No-op if the stack is absent or empty, or visit is nil.
func (s *Stack[T]) Map(visit func(*Frame[T])) {
	if s == nil || visit == nil {
		return
	}

	for frame := s.top; frame != nil; frame = frame.next {
		visit(frame)
	}
}
