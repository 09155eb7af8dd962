package document

import (
	"fmt"
	"strings"
)

// Pair seeds a Map with an initial entry.
type Pair[V any] struct {
	Key   string
	Value V
}

// Map is an insertion-ordered map with case-insensitive keys. The casing a
// key was first inserted with is preserved and reported by iteration; later
// writes through a differently cased key update the value only. Section and
// field ordering in a script is semantically load-bearing, so Map is the
// only associative container used in the document model.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

func foldKey(key string) string {
	return strings.ToLower(key)
}

// NewMap builds a Map from the given pairs in order. It fails if two keys
// are case-insensitively equal.
func NewMap[V any](pairs ...Pair[V]) (*Map[V], error) {
	m := &Map[V]{values: make(map[string]V, len(pairs))}
	for _, pair := range pairs {
		if m.Contains(pair.Key) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, pair.Key)
		}
		m.Set(pair.Key, pair.Value)
	}
	return m, nil
}

// Get returns the value for key, matching case-insensitively.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.values == nil {
		return zero, false
	}
	value, ok := m.values[foldKey(key)]
	return value, ok
}

// Fetch is Get with a strict contract: absent keys are an error.
func (m *Map[V]) Fetch(key string) (V, error) {
	value, ok := m.Get(key)
	if !ok {
		return value, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// Set inserts or updates the value for key. A new key is appended to the
// iteration order with its given casing; an existing key keeps the casing
// recorded at first insertion.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	folded := foldKey(key)
	if _, ok := m.values[folded]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[folded] = value
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	if m == nil || m.values == nil {
		return false
	}
	folded := foldKey(key)
	if _, ok := m.values[folded]; !ok {
		return false
	}
	delete(m.values, folded)
	for i, existing := range m.keys {
		if foldKey(existing) == folded {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether key is present, matching case-insensitively.
func (m *Map[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order with their original casing.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) Each(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !fn(key, m.values[foldKey(key)]) {
			return
		}
	}
}
