// Package chain contains the singly-linked containers backing the desk:
// a LIFO Stack and a FIFO Queue. Neither is safe for concurrent use.
package chain

import (
	"errors"
	"fmt"
)

// node is one cell of a chain. It owns its value and the link to its successor.
type node[T any] struct {
	value T
	next  *node[T]
}

// detach clears the outgoing link so nothing past the head stays reachable
// through a node that has left its chain.
func (n *node[T]) detach() T {
	n.next = nil
	return n.value
}

// ErrEmptyStructure is matched by every EmptyStructureError via errors.Is.
var ErrEmptyStructure = errors.New("structure is empty")

// EmptyStructureError is returned when removing from an empty container.
// Structure names the container that was empty.
type EmptyStructureError struct {
	Structure string
}

func (e *EmptyStructureError) Error() string {
	return fmt.Sprintf("%s is empty", e.Structure)
}

// Is reports whether target is ErrEmptyStructure.
func (e *EmptyStructureError) Is(target error) bool {
	return target == ErrEmptyStructure
}
