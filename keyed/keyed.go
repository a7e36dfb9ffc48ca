/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package keyed provides an ordered key/value container.
//
// Map iterates in ascending key order. It is the storage behind managed
// containers, which rely on that order when ids are renumbered.
// A Map is not safe for concurrent mutation.
package keyed

import (
	"cmp"
	"iter"
	"slices"
)

// Map is an ordered map from K to V.
//
// The zero value is not usable; construct with New.
type Map[K cmp.Ordered, V any] struct {
	m    map[K]V
	keys []K // ascending
}

// New returns an empty Map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Put stores v under k and returns the previous value, if any.
func (m *Map[K, V]) Put(k K, v V) (prev V, replaced bool) {
	prev, replaced = m.m[k]
	m.m[k] = v
	if !replaced {
		i, _ := slices.BinarySearch(m.keys, k)
		m.keys = slices.Insert(m.keys, i, k)
	}
	return prev, replaced
}

// Delete removes k and returns the value it held.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	v, ok := m.m[k]
	if !ok {
		return v, false
	}
	delete(m.m, k)
	if i, found := slices.BinarySearch(m.keys, k); found {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return v, true
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.m[k]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// All iterates entries in ascending key order. The map must not be
// mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in ascending key order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.m[k])
	}
	return out
}

// First returns the entry with the lowest key.
func (m *Map[K, V]) First() (K, V, bool) {
	if len(m.keys) == 0 {
		var k K
		var v V
		return k, v, false
	}
	k := m.keys[0]
	return k, m.m[k], true
}

// Clone returns a shallow copy: entries are copied, values are not.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{m: make(map[K]V, len(m.m)), keys: slices.Clone(m.keys)}
	for k, v := range m.m {
		out.m[k] = v
	}
	return out
}

// Empty returns a new, empty Map of the same kind.
func (m *Map[K, V]) Empty() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V, len(m.m))}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.m)
	m.keys = m.keys[:0]
}
