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

package apis

import "reflect"

// KindTag selects an independent numbering sequence within a scope.
// Each concrete entity type reports one constant tag.
type KindTag string

// String returns the tag as a plain string.
func (k KindTag) String() string { return string(k) }

// Kinded is implemented by anything that knows its own kind tag.
//
// The returned tag MUST be constant for a concrete type and MUST NOT
// depend on instance state: when only the type is known, KindTag is
// called on a fresh zero value.
type Kinded interface {
	KindTag() KindTag
}

// Catalog assigns kind tags to types that do not implement Kinded, such
// as types from other packages.
type Catalog interface {
	// Register associates the named type under t's pointers with a fixed tag.
	// Registering the same (type, tag) pair again is a no-op.
	Register(t reflect.Type, tag KindTag) error
	// Lookup returns the tag for a type if present.
	Lookup(t reflect.Type) (tag KindTag, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []CatalogEntry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// CatalogEntry is a single (type, tag) association in a Catalog snapshot.
type CatalogEntry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Tag is the associated kind tag.
	Tag KindTag
}
