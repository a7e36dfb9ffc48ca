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

package managed

import (
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/scope"
)

// Factory produces uniquely numbered entities within one scope.
//
// Copies are numbered through the counters rather than inheriting the
// source id, so a copy never shares an id with another entity of the same
// (scope, kind). Nothing the factory creates is registered anywhere.
//
// The bound scope can be changed with Rebind; a Factory is safe for
// concurrent use.
type Factory[E Duplicable[E]] struct {
	mu       sync.RWMutex
	scope    *scope.Token
	counters apis.Counters
	log      *zap.Logger
}

// NewFactory creates a factory numbering entities under s.
func NewFactory[E Duplicable[E]](counters apis.Counters, s *scope.Token, opts ...Option) (*Factory[E], error) {
	if counters == nil {
		return nil, ErrNilCounters
	}
	if s == nil {
		return nil, ErrNilScope
	}
	o := newOptions(opts)
	return &Factory[E]{scope: s, counters: counters, log: o.log}, nil
}

// Scope returns the scope the factory currently numbers in.
func (f *Factory[E]) Scope() *scope.Token {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.scope
}

// Rebind moves the factory onto scope s. Entities created earlier keep
// their ids.
func (f *Factory[E]) Rebind(s *scope.Token) error {
	if s == nil {
		return ErrNilScope
	}
	f.mu.Lock()
	old := f.scope
	f.scope = s
	f.mu.Unlock()

	f.log.Debug("managed factory rebound", zap.Stringer("from", old), zap.Stringer("to", s))
	return nil
}

// Counters returns the counters the factory numbers with.
func (f *Factory[E]) Counters() apis.Counters {
	return f.counters
}

// Mint draws the next id for kind in the factory's scope. Constructors of
// new entities use it to obtain their first id.
func (f *Factory[E]) Mint(kind apis.KindTag) uint64 {
	return f.counters.Next(f.Scope(), kind)
}

// CreateUniqueShallowCopyOf returns a shallow copy of src carrying a fresh id.
func (f *Factory[E]) CreateUniqueShallowCopyOf(src E) E {
	cp := src.ShallowCopy()
	cp.RecreateID(f.counters, f.Scope())
	return cp
}

// CreateUniqueDeepCopyOf returns a deep copy of src carrying a fresh id.
// Owned sub-structures are duplicated by the entity's own DeepCopy and keep
// their ids.
func (f *Factory[E]) CreateUniqueDeepCopyOf(src E) E {
	cp := src.DeepCopy()
	cp.RecreateID(f.counters, f.Scope())
	return cp
}
