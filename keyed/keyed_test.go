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

package keyed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mid/keyed"
)

func TestPut_AscendingIteration(t *testing.T) {
	m := keyed.New[uint64, string]()
	for _, k := range []uint64{9, 2, 5, 0} {
		_, replaced := m.Put(k, "v")
		assert.False(t, replaced)
	}

	var keys []uint64
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []uint64{0, 2, 5, 9}, keys)
	assert.Equal(t, keys, m.Keys())
	assert.Equal(t, 4, m.Len())
}

func TestPut_Overwrite(t *testing.T) {
	m := keyed.New[uint64, string]()
	m.Put(1, "a")

	prev, replaced := m.Put(1, "b")
	assert.True(t, replaced)
	assert.Equal(t, "a", prev)
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestDelete(t *testing.T) {
	m := keyed.New[uint64, string]()
	m.Put(0, "a")
	m.Put(1, "b")
	m.Put(2, "c")

	v, ok := m.Delete(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.False(t, m.Contains(1))
	assert.Equal(t, []string{"a", "c"}, m.Values())

	_, ok = m.Delete(42)
	assert.False(t, ok)
}

func TestFirst(t *testing.T) {
	m := keyed.New[string, int]()
	_, _, ok := m.First()
	assert.False(t, ok)

	m.Put("b", 2)
	m.Put("a", 1)
	k, v, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)
}

func TestClone_IsIndependent(t *testing.T) {
	m := keyed.New[uint64, *int]()
	x := 7
	m.Put(3, &x)

	c := m.Clone()
	c.Put(4, nil)
	m.Delete(3)

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, []uint64{3, 4}, c.Keys())
	got, _ := c.Get(3)
	assert.Same(t, &x, got, "clone shares values")
}

func TestEmptyAndClear(t *testing.T) {
	m := keyed.New[uint64, string]()
	m.Put(1, "a")

	e := m.Empty()
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	m.Put(5, "z")
	assert.Equal(t, []uint64{5}, m.Keys())
}

func TestAll_StopsEarly(t *testing.T) {
	m := keyed.New[int, int]()
	for i := range 5 {
		m.Put(i, i*i)
	}
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
