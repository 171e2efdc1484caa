package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a typed FIFO queue backed by a deque.
// Enqueue/Dequeue are O(1) amortized.
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q.
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// FromSlice creates a new Q holding the items in order.
func FromSlice[T any](items []T) *Q[T] {
	q := New[T]()
	for _, item := range items {
		q.Enqueue(item)
	}
	return q
}

// Enqueue adds an item to the back of the queue.
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue.
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the item at the front of the queue without removing it.
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Requeue adds an item back to the front of the queue.
func (q *Q[T]) Requeue(item T) {
	q.d.PushFront(item)
}

// Len returns the number of items in the queue.
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Drain removes and returns all remaining items in order.
func (q *Q[T]) Drain() []T {
	items := make([]T, 0, q.d.Len())
	for {
		item, ok := q.Dequeue()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}
