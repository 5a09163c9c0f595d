package ds

import (
	"container/list"

	"github.com/samber/lo"
)

// LinkedHashMap is a map that remembers the insertion order of its keys.
// Overwriting an existing key keeps its original position.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keys = append(keys, key)
	}
	return keys
}

func (r *LinkedHashMap[K, V]) Values() []V {
	return lo.Map(
		r.Keys(),
		func(key K, _ int) V {
			return r.hashMap[key]
		},
	)
}

func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

// PutIfAbsent stores value only when key has not been seen yet,
// and reports whether it did.
func (r *LinkedHashMap[K, V]) PutIfAbsent(key K, value V) bool {
	if _, existed := r.hashMap[key]; existed {
		return false
	}
	r.ordering.PushBack(key)
	r.hashMap[key] = value
	return true
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r *LinkedHashMap[K, V]) Has(key K) bool {
	_, ok := r.hashMap[key]
	return ok
}
