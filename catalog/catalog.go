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

package catalog

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/mid/apis"
	uref "dirpx.dev/mid/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("mid(catalog): nil reflect.Type provided")
	// ErrEmptyTag is returned when an empty kind tag is provided.
	ErrEmptyTag = errors.New("mid(catalog): empty kind tag provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different tag.
	ErrConflictingRegistration = errors.New("mid(catalog): conflicting kind registration")
)

// New constructs a Catalog keyed by named types. Up to cfg.MaxIndirect
// pointer levels are stripped on Register and Lookup, so *Node and Node
// share one entry.
func New(cfg apis.Config) apis.Catalog {
	return &catalog{maxIndirect: cfg.MaxIndirect}
}

// catalog is a simple Catalog implementation backed by sync.Map.
type catalog struct {
	// maxIndirect bounds pointer stripping of keys.
	maxIndirect int
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to registered tag.
	m sync.Map // map[reflect.Type]apis.KindTag
	// count tracks the number of registered entries.
	count int
}

// Register associates the named type under t's pointers with the given tag.
// It is idempotent for the same (type, tag) pair.
func (c *catalog) Register(t reflect.Type, tag apis.KindTag) error {
	if t == nil {
		return ErrNilType
	}
	if tag == "" {
		return ErrEmptyTag
	}

	b, err := uref.Indirect(t, c.maxIndirect)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := c.m.Load(b); ok {
		if old.(apis.KindTag) == tag {
			return nil
		}
		return ErrConflictingRegistration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := c.m.Load(b); ok {
		if old.(apis.KindTag) == tag {
			return nil
		}
		return ErrConflictingRegistration
	}

	c.m.Store(b, tag)
	c.count++
	return nil
}

// Lookup returns the tag for a type if present.
func (c *catalog) Lookup(t reflect.Type) (apis.KindTag, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Indirect(t, c.maxIndirect)
	if err != nil {
		return "", false
	}
	if v, ok := c.m.Load(nt); ok {
		return v.(apis.KindTag), true
	}
	return "", false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (c *catalog) Entries() []apis.CatalogEntry {
	entries := make([]apis.CatalogEntry, 0, c.Count())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CatalogEntry{
			Type: key.(reflect.Type),
			Tag:  value.(apis.KindTag),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (c *catalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears all registered entries.
func (c *catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}
