package gensync

import "sync"

// Map is a generically typed wrapper around sync.Map. The zero value is
// an empty map ready to use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Delete deletes the value for a key.
func (m *Map[K, V]) Delete(key K) {
	m.m.Delete(key)
}

// Load returns the value stored in the map for a key, or the zero value if no
// value is present. The ok result indicates whether value was found in the map.
func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := m.m.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

// Store sets the value for a key.
func (m *Map[K, V]) Store(key K, value V) {
	m.m.Store(key, value)
}

// Range calls f sequentially for each key and value present in the map. If f
// returns false, range stops the iteration. It carries the same (lack of)
// snapshot guarantees as sync.Map.Range.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

// Length will get the number of elements in the map. It is subject to the
// same conditions/restrictions as Range.
func (m *Map[K, V]) Length() (length int) {
	m.Range(func(_ K, _ V) bool {
		length++
		return true
	})
	return length
}
