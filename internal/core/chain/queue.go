package chain

import "iter"

const defaultQueueName = "queue"

// Queue is a FIFO container built from a chain of nodes running from front
// to back. front and back are nil together exactly when the queue is empty,
// and back.next is always nil.
// The zero value is an empty queue.
type Queue[T any] struct {
	name  string
	front *node[T]
	back  *node[T]
}

// NewQueue creates an empty queue. name identifies it in EmptyStructureError.
func NewQueue[T any](name string) *Queue[T] {
	return &Queue[T]{name: name}
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.front == nil
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.back == nil {
		q.front = n
	} else {
		q.back.next = n
	}
	q.back = n
}

// Dequeue removes and returns the element at the front of the queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, &EmptyStructureError{Structure: q.label()}
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		// Last node left; back must not keep pointing at it.
		q.back = nil
	}
	return n.detach(), nil
}

// All yields the elements from front to back without modifying the queue.
// Each range over the returned sequence starts at the current front.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (q *Queue[T]) label() string {
	if q.name == "" {
		return defaultQueueName
	}
	return q.name
}
