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
	"errors"
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/mid/apis"
	"dirpx.dev/mid/keyed"
	"dirpx.dev/mid/scope"
)

var (
	// ErrNilCounters is returned when a nil apis.Counters is provided.
	ErrNilCounters = errors.New("mid(managed): nil counters provided")
	// ErrNilScope is returned when a nil *scope.Token is provided.
	ErrNilScope = errors.New("mid(managed): nil scope provided")
	// ErrEmptyKind is returned when a bound container is given an empty kind tag.
	ErrEmptyKind = errors.New("mid(managed): empty kind tag provided")
	// ErrNilResolver is returned when a nil apis.Resolver is provided.
	ErrNilResolver = errors.New("mid(managed): nil resolver provided")
	// ErrUnresolvedKind is returned when no kind tag can be derived for a type.
	ErrUnresolvedKind = errors.New("mid(managed): no kind tag for entity type")
	// ErrNilObserver is returned when a nil clone observer is provided.
	ErrNilObserver = errors.New("mid(managed): nil observer provided")

	// ErrKindMismatch is the panic value (wrapped) for registering an entity
	// of another kind into a strict bound container.
	ErrKindMismatch = errors.New("mid(managed): entity kind does not match container")
	// ErrDuplicateID is the panic value (wrapped) for entities that report
	// the same id after re-numbering.
	ErrDuplicateID = errors.New("mid(managed): entities share an id after re-numbering")
)

// Duplicable is a managed entity that can copy itself.
type Duplicable[E any] interface {
	apis.ManagedID
	apis.Copier[E]
}

// Container holds managed entities keyed by their id and iterates them in
// ascending id order.
//
// A container is either bound to one (scope, kind) pair, in which case
// RecreateIDs and Reset drive that counter, or unbound, in which case its
// entries derive their ids some other way and no counter is ever touched.
//
// Outside of RecreateIDs every key equals the id its entity reports.
// Entities must not change their id while registered except through the
// container. A Container is not safe for concurrent mutation.
type Container[E apis.ManagedID] struct {
	entries  *keyed.Map[uint64, E]
	counters apis.Counters
	scope    *scope.Token
	kind     apis.KindTag // empty when unbound
	strict   bool
	log      *zap.Logger
}

// NewContainer creates a container bound to (s, kind).
func NewContainer[E apis.ManagedID](counters apis.Counters, s *scope.Token, kind apis.KindTag, opts ...Option) (*Container[E], error) {
	if kind == "" {
		return nil, ErrEmptyKind
	}
	return newContainer[E](counters, s, kind, newOptions(opts))
}

// NewUnboundContainer creates a container without a kind. It still needs
// counters and a scope: RecreateIDs has every entity draw its new id from
// its own kind's counter under s. The container itself never resets or
// rewinds a counter.
func NewUnboundContainer[E apis.ManagedID](counters apis.Counters, s *scope.Token, opts ...Option) (*Container[E], error) {
	return newContainer[E](counters, s, "", newOptions(opts))
}

// NewContainerFor creates a container bound to s and to the kind res
// resolves for E. Since E is Kinded, a resolver that asks the type first
// binds the container to the tag its entities report.
func NewContainerFor[E apis.ManagedID](counters apis.Counters, s *scope.Token, res apis.Resolver, opts ...Option) (*Container[E], error) {
	if res == nil {
		return nil, ErrNilResolver
	}
	t := reflect.TypeFor[E]()
	kind, ok := res.KindOfType(t)
	if !ok || kind == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvedKind, t)
	}
	return newContainer[E](counters, s, kind, newOptions(opts))
}

func newContainer[E apis.ManagedID](counters apis.Counters, s *scope.Token, kind apis.KindTag, o options) (*Container[E], error) {
	if counters == nil {
		return nil, ErrNilCounters
	}
	if s == nil {
		return nil, ErrNilScope
	}
	return &Container[E]{
		entries:  keyed.New[uint64, E](),
		counters: counters,
		scope:    s,
		kind:     kind,
		strict:   o.cfg.StrictKinds,
		log:      o.log,
	}, nil
}

// Scope returns the scope the container's entities are numbered in.
func (c *Container[E]) Scope() *scope.Token {
	return c.scope
}

// Kind returns the bound kind tag; ok is false for unbound containers.
func (c *Container[E]) Kind() (kind apis.KindTag, ok bool) {
	return c.kind, c.kind != ""
}

// IsBound reports whether the container drives a (scope, kind) counter.
func (c *Container[E]) IsBound() bool {
	return c.kind != ""
}

// Counters returns the counters the container numbers with.
func (c *Container[E]) Counters() apis.Counters {
	return c.counters
}

// Register stores e under e.ID() and returns the entity it displaced, if any.
// Registering over an existing id is not an error.
//
// In a strict bound container, an entity of another kind is a programming
// error: Register panics with an error wrapping ErrKindMismatch and stores nothing.
func (c *Container[E]) Register(e E) (prev E, replaced bool) {
	if c.strict && c.kind != "" {
		if k := e.KindTag(); k != c.kind {
			panic(fmt.Errorf("%w: got %q, container holds %q", ErrKindMismatch, k, c.kind))
		}
	}
	prev, replaced = c.entries.Put(e.ID(), e)
	if replaced {
		c.log.Debug("managed entity replaced",
			zap.Stringer("scope", c.scope),
			zap.Stringer("kind", c.kind),
			zap.Uint64("id", e.ID()),
		)
	}
	return prev, replaced
}

// Remove deletes the entity registered under id.
func (c *Container[E]) Remove(id uint64) (E, bool) {
	return c.entries.Delete(id)
}

// RemoveValue deletes the entity registered under e.ID().
func (c *Container[E]) RemoveValue(e E) (E, bool) {
	return c.entries.Delete(e.ID())
}

// Get returns the entity registered under id.
func (c *Container[E]) Get(id uint64) (E, bool) {
	return c.entries.Get(id)
}

// Contains reports whether an entity is registered under id.
func (c *Container[E]) Contains(id uint64) bool {
	return c.entries.Contains(id)
}

// Len returns the number of entities.
func (c *Container[E]) Len() int {
	return c.entries.Len()
}

// IsEmpty reports whether the container holds no entities.
func (c *Container[E]) IsEmpty() bool {
	return c.entries.Len() == 0
}

// All iterates (id, entity) pairs in ascending id order.
func (c *Container[E]) All() iter.Seq2[uint64, E] {
	return c.entries.All()
}

// Values returns the entities in ascending id order.
func (c *Container[E]) Values() []E {
	return c.entries.Values()
}

// IDs returns the registered ids in ascending order.
func (c *Container[E]) IDs() []uint64 {
	return c.entries.Keys()
}

// First returns the entity with the lowest id.
func (c *Container[E]) First() (E, bool) {
	_, e, ok := c.entries.First()
	return e, ok
}

// RecreateIDs renumbers every entity in ascending id order and rebuilds the
// index from the new ids. Relative order is preserved.
//
// With rewind set, a bound container first resets its counter, so the
// resulting ids are 0..Len()-1. Unbound containers skip the counter step.
//
// Two entities reporting the same new id is a programming error and panics
// with an error wrapping ErrDuplicateID. By then every entity already
// carries its new id while the container still indexes the old ones, so
// keys no longer match ids: a container that panicked here must be
// discarded.
func (c *Container[E]) RecreateIDs(rewind bool) {
	if rewind && c.IsBound() {
		c.counters.ResetKind(c.scope, c.kind)
	}
	if c.entries.Len() == 0 {
		return
	}

	values := c.entries.Values()
	for _, e := range values {
		e.RecreateID(c.counters, c.scope)
	}

	fresh := c.entries.Empty()
	for _, e := range values {
		if _, dup := fresh.Put(e.ID(), e); dup {
			panic(fmt.Errorf("%w: id %d in %v", ErrDuplicateID, e.ID(), c.scope))
		}
	}
	c.entries = fresh

	c.log.Debug("managed ids recreated",
		zap.Stringer("scope", c.scope),
		zap.Stringer("kind", c.kind),
		zap.Int("entries", len(values)),
		zap.Bool("rewound", rewind && c.IsBound()),
		zap.Uint64("first", values[0].ID()),
		zap.Uint64("last", values[len(values)-1].ID()),
	)
}

// Reset lets every entity reset its own nested containers, removes all
// entities and, for a bound container, resets its counter so the next
// entity of the kind is numbered 0.
func (c *Container[E]) Reset() {
	n := c.entries.Len()
	for _, e := range c.entries.Values() {
		if r, ok := any(e).(apis.ChildResetter); ok {
			r.ResetChildren()
		}
	}
	c.entries.Clear()
	if c.IsBound() {
		c.counters.ResetKind(c.scope, c.kind)
	}

	c.log.Debug("managed container reset",
		zap.Stringer("scope", c.scope),
		zap.Stringer("kind", c.kind),
		zap.Int("entries", n),
	)
}

// ShallowClone returns a container with the same binding that shares the
// entities of c.
func (c *Container[E]) ShallowClone() *Container[E] {
	out := *c
	out.entries = c.entries.Clone()
	return &out
}

// GroupBy partitions the entities of c by classify. Each group keeps
// ascending id order. c is not modified.
func GroupBy[E apis.ManagedID, K comparable](c *Container[E], classify func(E) K) map[K][]E {
	out := make(map[K][]E)
	for _, e := range c.entries.All() {
		k := classify(e)
		out[k] = append(out[k], e)
	}
	return out
}

// DeepClone returns a container with the same binding holding a deep copy
// of every entity. Copies keep their ids.
func DeepClone[E Duplicable[E]](c *Container[E]) *Container[E] {
	out, _ := DeepCloneWithMapping(c, func(E, E) {})
	return out
}

// DeepCloneWithMapping is DeepClone that also reports every
// (original, copy) pair to observe, in ascending id order. Callers use it
// to rewire references between the two entity graphs.
func DeepCloneWithMapping[E Duplicable[E]](c *Container[E], observe func(original, copy E)) (*Container[E], error) {
	if observe == nil {
		return nil, ErrNilObserver
	}
	out := *c
	out.entries = c.entries.Empty()
	for _, e := range c.entries.All() {
		cp := e.DeepCopy()
		out.entries.Put(cp.ID(), cp)
		observe(e, cp)
	}
	return &out, nil
}
