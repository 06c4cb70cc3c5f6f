package ds

import (
	"bytes"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion order for iteration and
// JSON encoding.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering []K
}

func NewLinkedHashMap[K comparable, V any](capacity int) *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  make(map[K]V, capacity),
		ordering: make([]K, 0, capacity),
	}
}

// Keys returns a copy of the keys in insertion order.
func (r *LinkedHashMap[K, V]) Keys() []K {
	return ShallowCopy(r.ordering)
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.ordering)
}

// Put keeps the original position of a key that is already present.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering = append(r.ordering, key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

// Each stops early when f returns false.
func (r *LinkedHashMap[K, V]) Each(f func(key K, value V) bool) {
	for _, key := range r.ordering {
		if !f(key, r.hashMap[key]) {
			return
		}
	}
}

func (r *LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for i, key := range r.ordering {
		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if i != len(r.ordering)-1 {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
