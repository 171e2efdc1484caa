package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap is a typed map which preserves insertion order on iteration.
type OrderedMap[K comparable, V any] struct {
	m *wk8.OrderedMap
}

// Iterator walks an OrderedMap in insertion order.
type Iterator[K comparable, V any] struct {
	pair *wk8.Pair
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: wk8.New()}
}

// Set stores value under key and reports whether the key already existed,
// returning the previous value if so. Insertion order is kept on update.
func (o *OrderedMap[K, V]) Set(key K, value V) (V, bool) {
	prev, existed := o.m.Set(key, value)
	if !existed {
		var zero V
		return zero, false
	}
	return prev.(V), true
}

// Get returns the value stored under key.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Delete removes key and reports whether it was present.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	_, existed := o.m.Delete(key)
	return existed
}

// Count returns the number of stored pairs.
func (o *OrderedMap[K, V]) Count() int {
	return o.m.Len()
}

// Front returns an iterator positioned at the oldest pair, or nil when empty.
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	pair := o.m.Oldest()
	if pair == nil {
		return nil
	}
	return &Iterator[K, V]{pair: pair}
}

// Next advances the iterator, returning nil when exhausted.
func (i *Iterator[K, V]) Next() *Iterator[K, V] {
	next := i.pair.Next()
	if next == nil {
		return nil
	}
	return &Iterator[K, V]{pair: next}
}

// Key returns the key at the iterator position.
func (i *Iterator[K, V]) Key() K {
	return i.pair.Key.(K)
}

// Value returns the value at the iterator position.
func (i *Iterator[K, V]) Value() V {
	return i.pair.Value.(V)
}
