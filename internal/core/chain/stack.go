package chain

import "iter"

const defaultStackName = "stack"

// Stack is a LIFO container built from a chain of nodes starting at top.
// The zero value is an empty stack.
type Stack[T any] struct {
	name string
	top  *node[T]
}

// NewStack creates an empty stack. name identifies it in EmptyStructureError.
func NewStack[T any](name string) *Stack[T] {
	return &Stack[T]{name: name}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{value: v, next: s.top}
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, &EmptyStructureError{Structure: s.label()}
	}
	n := s.top
	s.top = n.next
	return n.detach(), nil
}

// All yields the elements from top to bottom without modifying the stack.
// Each range over the returned sequence starts at the current top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (s *Stack[T]) label() string {
	if s.name == "" {
		return defaultStackName
	}
	return s.name
}
